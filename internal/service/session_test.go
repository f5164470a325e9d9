package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhamedyehya/aqar-admin/internal/adapters/tokencodec"
	domainauth "github.com/Muhamedyehya/aqar-admin/internal/domain/auth"
	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	authmocks "github.com/Muhamedyehya/aqar-admin/internal/mocks/auth"
)

const testAdminEmail = "admin@gmail.com"

func newSessionManager(t *testing.T, seed map[string]string) (*authmocks.MemorySessionStore, *SessionManager) {
	t.Helper()
	store := authmocks.NewMemorySessionStore(seed)
	mgr := NewSessionManager(SessionManagerOptions{
		Store:   store,
		Decoder: tokencodec.New(),
		Config:  SessionConfig{AdminEmail: testAdminEmail},
	})
	return store, mgr
}

func jwtWithPayload(payload string) string {
	return "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}

func TestSessionManager_RestoreAdminFromEmailClaim(t *testing.T) {
	_, mgr := newSessionManager(t, map[string]string{
		domainauth.KeyToken: "abc.eyJlbWFpbCI6ImFkbWluQGdtYWlsLmNvbSJ9.sig",
	})

	require.NoError(t, mgr.Restore(context.Background()))

	sess := mgr.Session()
	assert.True(t, sess.LoggedIn)
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, domainauth.StateAuthenticated, sess.State())
	// email taken from claims when none was persisted
	assert.Equal(t, testAdminEmail, sess.Email)
}

func TestSessionManager_RestoreAnonymousCleansStaleMarkers(t *testing.T) {
	for _, token := range []string{"", "undefined", "null"} {
		t.Run("token="+token, func(t *testing.T) {
			seed := map[string]string{
				domainauth.KeyIsLoggedIn:  "true",
				domainauth.KeyLegacyToken: "legacy",
				domainauth.KeyEmail:       "ops@example.com",
			}
			if token != "" {
				seed[domainauth.KeyToken] = token
			}
			store, mgr := newSessionManager(t, seed)

			require.NoError(t, mgr.Restore(context.Background()))

			assert.Equal(t, domainauth.Session{}, mgr.Session())
			left := store.Snapshot()
			assert.NotContains(t, left, domainauth.KeyToken)
			assert.NotContains(t, left, domainauth.KeyIsLoggedIn)
			assert.NotContains(t, left, domainauth.KeyLegacyToken)
		})
	}
}

func TestSessionManager_RestoreClaimsRules(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		email     string
		wantAdmin bool
	}{
		{"isAdmin claim", jwtWithPayload(`{"isAdmin":true}`), "", true},
		{"admin role claim", jwtWithPayload(`{"role":"admin"}`), "", true},
		{"email claim any case", jwtWithPayload(`{"email":"ADMIN@gmail.com"}`), "", true},
		{"ordinary user", jwtWithPayload(`{"email":"user@example.com","role":"user"}`), testAdminEmail, false},
		{"malformed token falls back to persisted email", "opaque-token", testAdminEmail, true},
		{"malformed token other email", "opaque-token", "user@example.com", false},
		{"malformed token no email", "opaque-token", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := map[string]string{domainauth.KeyToken: tt.token}
			if tt.email != "" {
				seed[domainauth.KeyEmail] = tt.email
			}
			_, mgr := newSessionManager(t, seed)

			require.NoError(t, mgr.Restore(context.Background()))
			assert.True(t, mgr.Session().LoggedIn)
			assert.Equal(t, tt.wantAdmin, mgr.IsAdmin())
		})
	}
}

func TestSessionManager_RestoreStoreFailure(t *testing.T) {
	store, mgr := newSessionManager(t, nil)
	store.FailGet = errors.New("disk gone")

	err := mgr.Restore(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read persisted token")
	assert.False(t, mgr.Session().LoggedIn)
}

func TestSessionManager_LoginPersistsAndDerivesAdmin(t *testing.T) {
	store, mgr := newSessionManager(t, nil)
	ctx := context.Background()
	token := jwtWithPayload(`{"isAdmin":true}`)

	require.NoError(t, mgr.Login(ctx, token, " ops@example.com "))

	sess := mgr.Session()
	assert.Equal(t, domainauth.Session{Token: token, Email: "ops@example.com", LoggedIn: true, IsAdmin: true}, sess)
	assert.Equal(t, map[string]string{
		domainauth.KeyToken:      token,
		domainauth.KeyEmail:      "ops@example.com",
		domainauth.KeyIsLoggedIn: "true",
	}, store.Snapshot())
}

func TestSessionManager_LoginWithoutEmailUsesPersisted(t *testing.T) {
	store, mgr := newSessionManager(t, map[string]string{domainauth.KeyEmail: testAdminEmail})

	require.NoError(t, mgr.Login(context.Background(), "opaque", ""))

	assert.Equal(t, testAdminEmail, mgr.Session().Email)
	assert.True(t, mgr.IsAdmin())
	assert.Equal(t, testAdminEmail, store.Snapshot()[domainauth.KeyEmail])
}

func TestSessionManager_LoginPlaceholderLeavesStateUnchanged(t *testing.T) {
	store, mgr := newSessionManager(t, nil)
	ctx := context.Background()
	require.NoError(t, mgr.Login(ctx, "first-token", "user@example.com"))
	before := mgr.Session()
	persisted := store.Snapshot()

	for _, bad := range []string{"", "undefined", "null", "  "} {
		err := mgr.Login(ctx, bad, testAdminEmail)
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidCredential(err))
	}

	assert.Equal(t, before, mgr.Session())
	assert.Equal(t, persisted, store.Snapshot())
}

func TestSessionManager_LoginStoreFailure(t *testing.T) {
	store, mgr := newSessionManager(t, nil)
	store.FailSet = errors.New("read-only")

	err := mgr.Login(context.Background(), "tok", "a@b.c")
	require.Error(t, err)
	assert.False(t, mgr.Session().LoggedIn)
}

func TestSessionManager_LoginPartialWriteRollsBack(t *testing.T) {
	for _, key := range []string{domainauth.KeyEmail, domainauth.KeyIsLoggedIn} {
		t.Run(key, func(t *testing.T) {
			store, mgr := newSessionManager(t, nil)
			store.FailSet = errors.New("quota exceeded")
			store.FailSetKey = key
			ctx := context.Background()

			require.Error(t, mgr.Login(ctx, jwtWithPayload(`{"isAdmin":true}`), "ops@example.com"))
			assert.False(t, mgr.Session().LoggedIn)
			assert.NotContains(t, store.Snapshot(), domainauth.KeyToken)

			store.FailSet = nil
			require.NoError(t, mgr.Restore(ctx))
			assert.Equal(t, domainauth.StateAnonymous, mgr.Session().State())
		})
	}
}

func TestSessionManager_MalformedTokenFallsBackToEmail(t *testing.T) {
	var logs bytes.Buffer
	store := authmocks.NewMemorySessionStore(map[string]string{
		domainauth.KeyToken: "opaque-token",
		domainauth.KeyEmail: "Admin@Gmail.com",
	})
	mgr := NewSessionManager(SessionManagerOptions{
		Store:   store,
		Decoder: tokencodec.New(),
		Config:  SessionConfig{AdminEmail: testAdminEmail},
		Logger:  slog.New(slog.NewJSONHandler(&logs, nil)),
	})

	require.NoError(t, mgr.Restore(context.Background()))

	assert.True(t, mgr.IsAdmin())
	assert.Contains(t, logs.String(), `"code":"malformed_token"`)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
}

func TestSessionManager_LogoutThenRestoreIsAnonymous(t *testing.T) {
	store, mgr := newSessionManager(t, map[string]string{domainauth.KeyLegacyToken: "old"})
	ctx := context.Background()
	require.NoError(t, mgr.Login(ctx, jwtWithPayload(`{"role":"admin"}`), testAdminEmail))
	require.True(t, mgr.IsAdmin())

	require.NoError(t, mgr.Logout(ctx))
	require.NoError(t, mgr.Logout(ctx)) // idempotent
	require.NoError(t, mgr.Restore(ctx))

	assert.Equal(t, domainauth.StateAnonymous, mgr.Session().State())
	assert.False(t, mgr.IsAdmin())
	assert.Empty(t, store.Snapshot())
}

func TestSessionManager_LogoutResetsEvenWhenStoreFails(t *testing.T) {
	store, mgr := newSessionManager(t, nil)
	ctx := context.Background()
	require.NoError(t, mgr.Login(ctx, "tok", ""))
	store.FailRemove = errors.New("locked")

	require.Error(t, mgr.Logout(ctx))
	assert.False(t, mgr.Session().LoggedIn)
}

func TestSessionManager_BearerSource(t *testing.T) {
	_, mgr := newSessionManager(t, nil)
	src := mgr.BearerSource()

	tok, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, "null", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.Type())

	require.NoError(t, mgr.Login(context.Background(), "live-token", ""))
	tok, err = src.Token()
	require.NoError(t, err)
	assert.Equal(t, "live-token", tok.AccessToken)
}

func TestNewSessionManager_RequiresDependencies(t *testing.T) {
	assert.Panics(t, func() { NewSessionManager(SessionManagerOptions{}) })
	assert.Panics(t, func() {
		NewSessionManager(SessionManagerOptions{Store: authmocks.NewMemorySessionStore(nil)})
	})
}
