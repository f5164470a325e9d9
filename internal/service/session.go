package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/oauth2"

	domainauth "github.com/Muhamedyehya/aqar-admin/internal/domain/auth"
	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Store   ports.SessionStore // Required: persisted key/value state
	Decoder ports.TokenDecoder // Required: claims decoder for privilege hints
	Config  SessionConfig      // Optional: admin address
	Logger  *slog.Logger       // Optional: structured logger
}

// SessionConfig holds the privilege-derivation settings.
type SessionConfig struct {
	// AdminEmail is the configured admin address, compared case-insensitively.
	AdminEmail string
}

// SessionManager owns the operator session: restore on start, login, logout
// and derivation of the advisory admin flag. It is the only writer of the
// persisted session keys.
type SessionManager struct {
	store      ports.SessionStore
	decoder    ports.TokenDecoder
	adminEmail string
	logger     *slog.Logger

	mu      sync.RWMutex
	session domainauth.Session
}

// NewSessionManager constructs a SessionManager in the anonymous state.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	if opts.Store == nil {
		panic("SessionStore is required")
	}
	if opts.Decoder == nil {
		panic("TokenDecoder is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		store:      opts.Store,
		decoder:    opts.Decoder,
		adminEmail: strings.TrimSpace(opts.Config.AdminEmail),
		logger:     logger.With("component", "session"),
	}
}

// Restore sets the initial state from the persisted store. A missing or
// placeholder token yields the anonymous state and erases stale markers.
func (m *SessionManager) Restore(ctx context.Context) error {
	token, ok, err := m.store.Get(ctx, domainauth.KeyToken)
	if err != nil {
		m.reset()
		return fmt.Errorf("read persisted token: %w", err)
	}

	if !ok || !domainauth.IsUsableToken(token) {
		m.reset()
		if cleanupErr := m.removeKeys(ctx, domainauth.KeyToken, domainauth.KeyIsLoggedIn, domainauth.KeyLegacyToken); cleanupErr != nil {
			return fmt.Errorf("clear stale session: %w", cleanupErr)
		}
		return nil
	}

	email, _, err := m.store.Get(ctx, domainauth.KeyEmail)
	if err != nil {
		m.logger.WarnContext(ctx, "read persisted email failed", "error", err)
		email = ""
	}

	m.authenticate(token, strings.TrimSpace(email))
	return nil
}

// Login persists token (and email when given) and enters the authenticated
// state. An absent or placeholder token leaves the session untouched.
func (m *SessionManager) Login(ctx context.Context, token, email string) error {
	if !domainauth.IsUsableToken(token) {
		m.logger.ErrorContext(ctx, "login rejected: token is absent or a placeholder",
			"token_empty", strings.TrimSpace(token) == "",
		)
		return apperrors.InvalidCredential("session token is absent or invalid")
	}
	email = strings.TrimSpace(email)

	if err := m.persistLogin(ctx, token, email); err != nil {
		// a half-written login must not restore as authenticated
		if rbErr := m.removeKeys(ctx, domainauth.KeyToken, domainauth.KeyIsLoggedIn); rbErr != nil {
			m.logger.ErrorContext(ctx, "roll back partial login failed", "error", rbErr)
		}
		return err
	}

	if email == "" {
		persisted, _, err := m.store.Get(ctx, domainauth.KeyEmail)
		if err != nil {
			m.logger.WarnContext(ctx, "read persisted email failed", "error", err)
		}
		email = strings.TrimSpace(persisted)
	}

	m.authenticate(token, email)
	m.logger.InfoContext(ctx, "operator logged in", "email", email, "is_admin", m.IsAdmin())
	return nil
}

func (m *SessionManager) persistLogin(ctx context.Context, token, email string) error {
	if err := m.store.Set(ctx, domainauth.KeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if email != "" {
		if err := m.store.Set(ctx, domainauth.KeyEmail, email); err != nil {
			return fmt.Errorf("persist email: %w", err)
		}
	}
	if err := m.store.Set(ctx, domainauth.KeyIsLoggedIn, domainauth.LoggedInMarker); err != nil {
		return fmt.Errorf("persist login marker: %w", err)
	}
	return nil
}

// Logout clears every persisted session key and returns to the anonymous
// state. The in-memory state is reset even when the store fails.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.reset()
	if err := m.removeKeys(ctx, domainauth.SessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Session returns a copy of the current session.
func (m *SessionManager) Session() domainauth.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// IsAdmin reports the advisory admin flag. Never use it as an authorization check.
func (m *SessionManager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.IsAdmin
}

// BearerSource exposes the current token as an oauth2.TokenSource. When no
// token is held it yields the literal "null" so the remote service rejects
// the request itself.
//
//nolint:ireturn // oauth2 consumers accept the interface.
func (m *SessionManager) BearerSource() oauth2.TokenSource {
	return bearerSource{m: m}
}

type bearerSource struct {
	m *SessionManager
}

func (b bearerSource) Token() (*oauth2.Token, error) {
	tok := b.m.Session().Token
	if tok == "" {
		tok = domainauth.PlaceholderNull
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

func (m *SessionManager) authenticate(token, email string) {
	claims, err := m.decoder.Claims(token)

	var isAdmin bool
	if err == nil {
		isAdmin = claims.GrantsAdmin(m.adminEmail)
		if email == "" {
			email = strings.TrimSpace(claims.Email)
		}
	} else {
		m.logger.Warn("token claims not decodable; using email fallback",
			"error", err,
			"code", apperrors.GetCode(err),
		)
		isAdmin = domainauth.EmailMatches(email, m.adminEmail)
	}

	m.mu.Lock()
	m.session = domainauth.Session{
		Token:    token,
		Email:    email,
		LoggedIn: true,
		IsAdmin:  isAdmin,
	}
	m.mu.Unlock()
}

func (m *SessionManager) reset() {
	m.mu.Lock()
	m.session = domainauth.Session{}
	m.mu.Unlock()
}

func (m *SessionManager) removeKeys(ctx context.Context, keys ...string) error {
	var errs []error
	for _, k := range keys {
		if err := m.store.Remove(ctx, k); err != nil {
			errs = append(errs, fmt.Errorf("remove %q: %w", k, err))
		}
	}
	return errors.Join(errs...)
}
