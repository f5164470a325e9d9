package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/Muhamedyehya/aqar-admin/internal/domain/model"
	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

const adsPath = "/api/ads"

var _ ports.AdsGateway = (*Ads)(nil)

// Ads is the listing resource gateway.
type Ads struct {
	c *Client
}

// NewAds returns the listing gateway backed by c.
func NewAds(c *Client) *Ads {
	if c == nil {
		panic("remote client is required")
	}
	return &Ads{c: c}
}

// List fetches every listing. The body may be a bare array or an object
// holding the array under the configured expression; an object without
// that array is an empty list.
func (a *Ads) List(ctx context.Context) ([]model.Listing, error) {
	data, err := a.c.do(ctx, request{method: http.MethodGet, path: adsPath})
	if err != nil {
		return nil, err
	}
	if isEmptyBody(data) {
		return []model.Listing{}, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode listings")
	}
	if _, isArray := doc.([]any); !isArray {
		extracted, err := jmespath.Search(a.c.listingsExpr, doc)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "extract listings")
		}
		if extracted == nil {
			return []model.Listing{}, nil
		}
		if _, ok := extracted.([]any); !ok {
			return nil, apperrors.Internal("unexpected listings response shape")
		}
		if data, err = json.Marshal(extracted); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "re-encode listings")
		}
	}

	var listings []model.Listing
	if err := decodeInto(data, &listings); err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].Images == nil {
			listings[i].Images = []string{}
		}
	}
	return listings, nil
}

// Create posts a new listing. Any id on listing is dropped.
func (a *Ads) Create(ctx context.Context, listing model.Listing) error {
	listing.ID = ""
	_, err := a.c.do(ctx, request{method: http.MethodPost, path: adsPath, body: normalized(listing), authed: true})
	return err
}

// Update replaces the listing identified by id.
func (a *Ads) Update(ctx context.Context, id string, listing model.Listing) error {
	if id == "" {
		return apperrors.ValidationField("id", "listing id is required")
	}
	listing.ID = id
	_, err := a.c.do(ctx, request{method: http.MethodPut, path: listingPath(id), body: normalized(listing), authed: true})
	return err
}

// Delete removes the listing identified by id.
func (a *Ads) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.ValidationField("id", "listing id is required")
	}
	_, err := a.c.do(ctx, request{method: http.MethodDelete, path: listingPath(id), authed: true})
	return err
}

func listingPath(id string) string {
	return adsPath + "/" + url.PathEscape(id)
}

// normalized guarantees images serialize as an array, never null.
func normalized(l model.Listing) model.Listing {
	if l.Images == nil {
		l.Images = []string{}
	}
	return l
}
