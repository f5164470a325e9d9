package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/Muhamedyehya/aqar-admin/internal/domain/auth"
	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	"github.com/Muhamedyehya/aqar-admin/internal/mocks"
)

func newSignIn(t *testing.T) (*mocks.MockAuthGateway, *SessionManager, *SignInService) {
	t.Helper()
	gw := mocks.NewMockAuthGateway(gomock.NewController(t))
	_, mgr := newSessionManager(t, nil)
	return gw, mgr, NewSignInService(SignInServiceOptions{Gateway: gw, Sessions: mgr})
}

func TestSignInService_Success(t *testing.T) {
	gw, mgr, svc := newSignIn(t)
	token := jwtWithPayload(`{"email":"admin@gmail.com"}`)
	gw.EXPECT().Login(gomock.Any(), "admin@gmail.com", "secret").Return(token, nil)

	require.NoError(t, svc.SignIn(context.Background(), "  admin@gmail.com ", "secret"))

	assert.Equal(t, domainauth.Session{Token: token, Email: "admin@gmail.com", LoggedIn: true, IsAdmin: true}, mgr.Session())
}

func TestSignInService_RequiresCredentials(t *testing.T) {
	_, _, svc := newSignIn(t)

	err := svc.SignIn(context.Background(), " ", "x")
	assert.Equal(t, "email", apperrors.GetField(err))
	err = svc.SignIn(context.Background(), "a@b.c", "")
	assert.Equal(t, "password", apperrors.GetField(err))
}

func TestSignInService_Failures(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		err     error
		wantMsg string
	}{
		{"remote message surfaced", "", apperrors.Rejected(401, "wrong password"), "wrong password"},
		{"rejection without message", "", apperrors.Rejected(401, ""), MsgInvalidCredentials},
		{"network", "", apperrors.Network(errors.New("refused"), "request failed"), MsgNetwork},
		{"no token", "", nil, MsgNoTokenReceived},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, mgr, svc := newSignIn(t)
			gw.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.token, tt.err)

			err := svc.SignIn(context.Background(), "a@b.c", "pw")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.False(t, mgr.Session().LoggedIn)
		})
	}
}
