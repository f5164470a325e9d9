package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhamedyehya/aqar-admin/config"
	domainauth "github.com/Muhamedyehya/aqar-admin/internal/domain/auth"
	authmocks "github.com/Muhamedyehya/aqar-admin/internal/mocks/auth"
	"github.com/Muhamedyehya/aqar-admin/internal/testutil"
)

func testConfig(apiURL string) *config.AppConfig {
	cfg := &config.AppConfig{
		API:  config.APIConfig{BaseURL: apiURL},
		Auth: config.AuthConfig{AdminEmail: "admin@gmail.com"},
	}
	cfg.Sanitize()
	return cfg
}

func TestBuildServices_WiresBearerFromSession(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "opaque-token"})
		default:
			_, _ = io.WriteString(w, `[]`)
		}
	}))
	defer srv.Close()

	store := authmocks.NewMemorySessionStore(nil)
	svc, err := BuildServices(ServiceDeps{Config: testConfig(srv.URL), Store: store})
	require.NoError(t, err)
	assert.Nil(t, svc.Uploader)

	ctx := context.Background()
	require.NoError(t, svc.SignIn.SignIn(ctx, "admin@gmail.com", "pw"))
	assert.True(t, svc.Sessions.IsAdmin())
	assert.Equal(t, "opaque-token", store.Snapshot()[domainauth.KeyToken])

	require.NoError(t, svc.Admin.Delete(ctx, "a1", confirmYes{}))
	require.Len(t, gotAuth, 3)
	assert.Empty(t, gotAuth[0], "login is unauthenticated")
	assert.Equal(t, "Bearer opaque-token", gotAuth[1])
	assert.Empty(t, gotAuth[2], "listing fetch is unauthenticated")
}

type confirmYes struct{}

func (confirmYes) Confirm(context.Context, string) (bool, error) { return true, nil }

func TestBuildServices_UploaderWhenConfigured(t *testing.T) {
	cfg := testConfig("http://localhost:5000")
	cfg.Cloudinary = config.CloudinaryConfig{CloudName: "demo", UploadPreset: "unsigned"}
	cfg.Cloudinary.Sanitize()

	svc, err := BuildServices(ServiceDeps{Config: cfg, Store: authmocks.NewMemorySessionStore(nil)})
	require.NoError(t, err)
	assert.NotNil(t, svc.Uploader)
}

func TestBuildServices_RequiresDeps(t *testing.T) {
	_, err := BuildServices(ServiceDeps{})
	require.Error(t, err)
	_, err = BuildServices(ServiceDeps{Config: testConfig("http://x")})
	require.Error(t, err)
	_, err = BuildServices(ServiceDeps{Config: testConfig(""), Store: authmocks.NewMemorySessionStore(nil)})
	require.Error(t, err)
}

func TestOpenConsole_RestoresFromSQLite(t *testing.T) {
	cfg := testConfig("http://localhost:5000")
	cfg.Session = config.SessionConfig{Backend: config.SessionBackendSQLite, SQLitePath: testutil.TempSessionPath(t)}
	ctx := context.Background()

	first, err := OpenConsole(ctx, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, first.Sessions.Login(ctx, "opaque", "admin@gmail.com"))
	require.NoError(t, first.Close())

	second, err := OpenConsole(ctx, cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	sess := second.Sessions.Session()
	assert.True(t, sess.LoggedIn)
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "admin@gmail.com", sess.Email)
}

func TestNewConsole_RestoreFailureContinuesAnonymous(t *testing.T) {
	mem := authmocks.NewMemorySessionStore(map[string]string{domainauth.KeyToken: "opaque"})
	mem.FailGet = errors.New("corrupt page")
	var logs bytes.Buffer
	ctx := context.Background()

	console, err := newConsole(ctx, testConfig("http://localhost:5000"), SessionStore{SessionStore: mem},
		slog.New(slog.NewJSONHandler(&logs, nil)))
	require.NoError(t, err)
	defer console.Close()

	assert.False(t, console.Sessions.Session().LoggedIn)
	assert.Contains(t, logs.String(), "restore session failed")

	mem.FailGet = nil
	require.NoError(t, console.Sessions.Logout(ctx))
	assert.Empty(t, mem.Snapshot())
}

func TestOpenSessionStore_UnknownBackend(t *testing.T) {
	_, err := OpenSessionStore(DatabaseConfig{Session: config.SessionConfig{Backend: "etcd"}})
	assert.Error(t, err)
}

func TestInitLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := initLogger(&buf, config.LogConfig{Level: "warn"})

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "v", entry["k"])
}

func TestRedisAddressHelpers(t *testing.T) {
	assert.True(t, isRedisURL("redis://localhost:6379"))
	assert.True(t, isRedisURL("rediss://cache:6380"))
	assert.False(t, isRedisURL("localhost:6379"))
	assert.Equal(t, []string{"a:1", "b:2"}, normalizeAddrs([]string{" a:1 ", "", "b:2"}))

	client, addr, err := newDirectClient(config.RedisConfig{URI: "redis://:pw@cache:6379/2"})
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, "cache:6379", addr)

	_, _, err = newDirectClient(config.RedisConfig{})
	assert.Error(t, err)
	_, _, err = newSentinelClient(config.RedisConfig{})
	assert.Error(t, err)
}
