package ports

import (
	"context"

	"github.com/Muhamedyehya/aqar-admin/internal/domain/model"
)

// AdsGateway wraps the remote listing resource.
type AdsGateway interface {
	List(ctx context.Context) ([]model.Listing, error)
	Create(ctx context.Context, listing model.Listing) error
	Update(ctx context.Context, id string, listing model.Listing) error
	Delete(ctx context.Context, id string) error
}

// SettingsGateway wraps the remote singleton settings record.
// Get reports found=false when the service has no settings to return.
type SettingsGateway interface {
	Get(ctx context.Context) (settings model.Settings, found bool, err error)
	Save(ctx context.Context, settings model.Settings) error
}

// Uploader pushes image sources to the hosting service and reports one
// message per finished file on out, in completion order. Upload does not
// close out.
type Uploader interface {
	Upload(ctx context.Context, sources []string, out chan<- model.UploadMessage) error
}
