package auth

// Package auth contains domain-level types for the operator session.
// It is pure and free of framework/adapter concerns.

import "strings"

// Role is the role claim value a token may carry.
type Role string

// RoleAdmin in a token's role claim signals admin privilege.
const RoleAdmin Role = "admin"

// Persisted session keys. The store maps each to a string value.
const (
	KeyToken      = "token"
	KeyEmail      = "email"
	KeyIsLoggedIn = "isLoggedIn"
	// KeyLegacyToken is only ever removed, never read.
	KeyLegacyToken = "authToken"
)

// SessionKeys lists every key a logout clears.
var SessionKeys = []string{KeyToken, KeyLegacyToken, KeyEmail, KeyIsLoggedIn}

// LoggedInMarker is the value stored under KeyIsLoggedIn while authenticated.
const LoggedInMarker = "true"

// Placeholder values that stand for "no token". They leak in when an absent
// value is stringified and must never be treated as a credential.
const (
	PlaceholderUndefined = "undefined"
	PlaceholderNull      = "null"
)

// IsUsableToken reports whether token is present, non-empty and not a placeholder.
func IsUsableToken(token string) bool {
	t := strings.TrimSpace(token)
	return t != "" && t != PlaceholderUndefined && t != PlaceholderNull
}

// State is the session state machine's state.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Session is the client-held record of the operator's login.
// IsAdmin is advisory UI state, never proof of authorization.
type Session struct {
	Token    string `json:"-"`
	Email    string `json:"email,omitempty"`
	LoggedIn bool   `json:"logged_in"`
	IsAdmin  bool   `json:"is_admin"`
}

// State derives the state machine state from the session.
func (s Session) State() State {
	if s.LoggedIn {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Claims is the subset of a token payload used for privilege hints.
type Claims struct {
	Email   string
	IsAdmin bool
	Role    Role
}

// GrantsAdmin applies the claims half of the privilege rule: an explicit
// isAdmin flag, the admin role, or an email matching adminEmail
// case-insensitively.
func (c Claims) GrantsAdmin(adminEmail string) bool {
	if c.IsAdmin || c.Role == RoleAdmin {
		return true
	}
	return EmailMatches(c.Email, adminEmail)
}

// EmailMatches compares two addresses case-insensitively. Empty never matches.
func EmailMatches(email, adminEmail string) bool {
	e := strings.TrimSpace(email)
	a := strings.TrimSpace(adminEmail)
	return e != "" && a != "" && strings.EqualFold(e, a)
}
