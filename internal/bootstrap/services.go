package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Muhamedyehya/aqar-admin/config"
	"github.com/Muhamedyehya/aqar-admin/internal/adapters/cloudinary"
	"github.com/Muhamedyehya/aqar-admin/internal/adapters/remote"
	"github.com/Muhamedyehya/aqar-admin/internal/adapters/tokencodec"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
	"github.com/Muhamedyehya/aqar-admin/internal/service"
)

// ServiceContainer holds all console services.
type ServiceContainer struct {
	Sessions *service.SessionManager
	SignIn   *service.SignInService
	Admin    *service.AdminController
	// Uploader is nil when Cloudinary is not configured.
	Uploader ports.Uploader
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config     *config.AppConfig
	Store      ports.SessionStore
	HTTPClient *http.Client // Optional: overrides the API and upload HTTP clients
	Logger     *slog.Logger
}

// BuildServices wires gateways and services. The session is not restored.
func BuildServices(deps ServiceDeps) (*ServiceContainer, error) {
	if deps.Config == nil {
		return nil, errors.New("config is required")
	}
	if deps.Store == nil {
		return nil, errors.New("session store is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	sessions := service.NewSessionManager(service.SessionManagerOptions{
		Store:   deps.Store,
		Decoder: tokencodec.New(),
		Config:  service.SessionConfig{AdminEmail: cfg.Auth.AdminEmail},
		Logger:  logger,
	})

	client, err := remote.NewClient(remote.Config{
		BaseURL:      cfg.API.BaseURL,
		Timeout:      cfg.API.Timeout,
		Credentials:  sessions.BearerSource(),
		ListingsExpr: cfg.API.ListingsExpr,
		ErrorExpr:    cfg.API.ErrorExpr,
		HTTPClient:   deps.HTTPClient,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	container := &ServiceContainer{
		Sessions: sessions,
		SignIn: service.NewSignInService(service.SignInServiceOptions{
			Gateway:  remote.NewAuth(client),
			Sessions: sessions,
			Logger:   logger,
		}),
		Admin: service.NewAdminController(service.AdminControllerOptions{
			Gateways: service.AdminGateways{
				Ads:      remote.NewAds(client),
				Settings: remote.NewSettings(client),
			},
			Session: sessions,
			Logger:  logger,
		}),
	}

	if cfg.Cloudinary.Enabled() {
		uploader, err := cloudinary.New(cloudinary.Config{
			CloudName:      cfg.Cloudinary.CloudName,
			UploadPreset:   cfg.Cloudinary.UploadPreset,
			Folder:         cfg.Cloudinary.Folder,
			MaxFiles:       cfg.Cloudinary.MaxFiles,
			AllowedFormats: cfg.Cloudinary.AllowedFormats,
			Concurrency:    cfg.Cloudinary.Concurrency,
			APIBase:        cfg.Cloudinary.APIBase,
			HTTPClient:     deps.HTTPClient,
			Logger:         logger,
		})
		if err != nil {
			return nil, fmt.Errorf("build uploader: %w", err)
		}
		container.Uploader = uploader
	}

	return container, nil
}

// Console is a ready-to-use console: services built and session restored.
type Console struct {
	*ServiceContainer
	store SessionStore
}

// Close releases the session store.
func (c *Console) Close() error {
	return c.store.Close()
}

// OpenConsole opens the session store, builds services and restores the
// persisted session.
func OpenConsole(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*Console, error) {
	store, err := OpenSessionStore(DatabaseConfig{
		Session:     cfg.Session,
		RedisConfig: cfg.Redis,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return newConsole(ctx, cfg, store, logger)
}

// newConsole builds services over an opened store. A failed restore leaves
// the session anonymous instead of failing, so logout and login can still
// repair the stored state.
func newConsole(ctx context.Context, cfg *config.AppConfig, store SessionStore, logger *slog.Logger) (*Console, error) {
	if logger == nil {
		logger = slog.Default()
	}

	container, err := BuildServices(ServiceDeps{Config: cfg, Store: store, Logger: logger})
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}
	if err := container.Sessions.Restore(ctx); err != nil {
		logger.WarnContext(ctx, "restore session failed; continuing anonymous", "error", err)
	}

	return &Console{ServiceContainer: container, store: store}, nil
}
