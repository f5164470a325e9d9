package remote

import (
	"context"
	"net/http"

	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

const loginPath = "/api/auth/login"

var _ ports.AuthGateway = (*Auth)(nil)

// Auth exchanges credentials for a session token.
type Auth struct {
	c *Client
}

// NewAuth returns the auth gateway backed by c.
func NewAuth(c *Client) *Auth {
	if c == nil {
		panic("remote client is required")
	}
	return &Auth{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login returns the token from a successful response. A 2xx answer without a
// token yields "" and no error; callers decide how to treat it.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	data, err := a.c.do(ctx, request{
		method: http.MethodPost,
		path:   loginPath,
		body:   loginRequest{Email: email, Password: password},
	})
	if err != nil {
		return "", err
	}
	if isEmptyBody(data) {
		return "", nil
	}
	var out loginResponse
	if err := decodeInto(data, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}
