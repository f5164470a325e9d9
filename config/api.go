package config

import (
	"strings"
	"time"
)

// APIConfig configures the marketplace REST API client.
type APIConfig struct {
	// BaseURL is the API origin, e.g. "https://api.example.com".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000"`

	// Timeout bounds every request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// ListingsExpr is the JMESPath expression locating the listing array when
	// the list endpoint answers with an object.
	ListingsExpr string `env:"LISTINGS_EXPR" envDefault:"ads"`

	// ErrorExpr is the JMESPath expression extracting the message from an error body.
	ErrorExpr string `env:"ERROR_EXPR" envDefault:"error || message"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 15 * time.Second
	}
	a.ListingsExpr = strings.TrimSpace(a.ListingsExpr)
	a.ErrorExpr = strings.TrimSpace(a.ErrorExpr)
}
