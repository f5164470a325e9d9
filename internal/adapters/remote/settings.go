package remote

import (
	"context"
	"net/http"

	"github.com/Muhamedyehya/aqar-admin/internal/domain/model"
	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

const settingsPath = "/api/settings"

var _ ports.SettingsGateway = (*Settings)(nil)

// Settings is the site settings gateway.
type Settings struct {
	c *Client
}

// NewSettings returns the settings gateway backed by c.
func NewSettings(c *Client) *Settings {
	if c == nil {
		panic("remote client is required")
	}
	return &Settings{c: c}
}

// Get fetches the settings record. A non-2xx answer or empty body means
// no record; found is false and err is nil.
func (s *Settings) Get(ctx context.Context) (model.Settings, bool, error) {
	data, err := s.c.do(ctx, request{method: http.MethodGet, path: settingsPath})
	if err != nil {
		if apperrors.IsRejected(err) {
			s.c.logger.DebugContext(ctx, "settings not available", "error", err)
			return model.Settings{}, false, nil
		}
		return model.Settings{}, false, err
	}
	if isEmptyBody(data) {
		return model.Settings{}, false, nil
	}
	var out model.Settings
	if err := decodeInto(data, &out); err != nil {
		return model.Settings{}, false, err
	}
	return out, true, nil
}

// Save overwrites the settings record.
func (s *Settings) Save(ctx context.Context, settings model.Settings) error {
	_, err := s.c.do(ctx, request{method: http.MethodPut, path: settingsPath, body: settings, authed: true})
	return err
}
