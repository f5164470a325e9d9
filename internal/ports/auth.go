package ports

// Package ports defines interfaces (hexagonal ports) for session and remote-resource behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/Muhamedyehya/aqar-admin/internal/domain/auth"
)

// SessionStore is the persisted string-to-string state backing the session.
// Get reports ok=false for a key that was never set or has been removed.
type SessionStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// TokenDecoder extracts privilege-hint claims from a session token.
// A non-nil error is always a malformed-token error; callers treat it as
// "no claims" and never surface it.
type TokenDecoder interface {
	Claims(token string) (domainauth.Claims, error)
}

// AuthGateway exchanges operator credentials for a session token.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}
