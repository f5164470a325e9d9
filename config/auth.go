package config

import "strings"

// DefaultAdminEmail is the admin address used when ADMIN_EMAIL is unset.
const DefaultAdminEmail = "admin@gmail.com"

// AuthConfig groups admin identity configuration.
type AuthConfig struct {
	// AdminEmail is the address treated as admin when token claims are silent.
	// Compared case-insensitively.
	AdminEmail string `env:"ADMIN_EMAIL" envDefault:"admin@gmail.com"`
}

// Sanitize trims the admin address and restores the default when blank.
func (a *AuthConfig) Sanitize() {
	a.AdminEmail = strings.TrimSpace(a.AdminEmail)
	if a.AdminEmail == "" {
		a.AdminEmail = DefaultAdminEmail
	}
}
