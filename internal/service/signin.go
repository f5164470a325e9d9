package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

// Sign-in failure messages shown to the operator.
const (
	MsgInvalidCredentials = "invalid email or password"
	MsgNoTokenReceived    = "no token received from server"
)

// SignInServiceOptions groups dependencies for SignInService.
type SignInServiceOptions struct {
	Gateway  ports.AuthGateway // Required: credential exchange endpoint
	Sessions *SessionManager   // Required: receives the issued token
	Logger   *slog.Logger      // Optional: structured logger
}

// SignInService exchanges operator credentials for a session token and hands
// it to the SessionManager.
type SignInService struct {
	gateway  ports.AuthGateway
	sessions *SessionManager
	logger   *slog.Logger
}

// NewSignInService constructs a SignInService.
func NewSignInService(opts SignInServiceOptions) *SignInService {
	if opts.Gateway == nil {
		panic("AuthGateway is required")
	}
	if opts.Sessions == nil {
		panic("SessionManager is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SignInService{
		gateway:  opts.Gateway,
		sessions: opts.Sessions,
		logger:   logger.With("component", "signin"),
	}
}

// SignIn posts the credentials and, on success, logs the session in.
func (s *SignInService) SignIn(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if password == "" {
		return apperrors.ValidationField("password", "password is required")
	}

	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.logger.WarnContext(ctx, "sign-in failed", "email", email, "error", err)
		switch {
		case apperrors.IsRejected(err):
			msg, ok := apperrors.RemoteMessage(err)
			if !ok {
				msg = MsgInvalidCredentials
			}
			return apperrors.Wrap(err, apperrors.ErrCodeRejected, msg)
		case apperrors.IsNetwork(err):
			return apperrors.Wrap(err, apperrors.ErrCodeNetwork, MsgNetwork)
		default:
			return fmt.Errorf("sign in: %w", err)
		}
	}

	if strings.TrimSpace(token) == "" {
		s.logger.ErrorContext(ctx, "sign-in response carried no token", "email", email)
		return apperrors.InvalidCredential(MsgNoTokenReceived)
	}
	return s.sessions.Login(ctx, token, email)
}
