//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Listing field names accepted by edit operations.
const (
	FieldTitle       = "title"
	FieldPrice       = "price"
	FieldLocation    = "location"
	FieldDescription = "description"
)

// ListingFields lists the editable text fields in display order.
var ListingFields = []string{FieldTitle, FieldPrice, FieldLocation, FieldDescription}

// Listing is a classified ad. An empty ID marks a draft that has never been saved.
type Listing struct {
	ID          string     `json:"_id,omitempty"`
	Title       string     `json:"title"`
	Price       FlexString `json:"price"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Images      []string   `json:"images"`
}

// UnmarshalJSON implements json.Unmarshaler. The identifier is read from
// "_id", falling back to "id".
func (l *Listing) UnmarshalJSON(data []byte) error {
	type plain Listing
	aux := struct {
		plain
		AltID string `json:"id"`
	}{plain: plain(*l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*l = Listing(aux.plain)
	if strings.TrimSpace(l.ID) == "" {
		l.ID = aux.AltID
	}
	return nil
}

// IsNew reports whether the listing has no identifier yet.
func (l Listing) IsNew() bool { return strings.TrimSpace(l.ID) == "" }

// Clone returns a copy that shares no image slice with l.
func (l Listing) Clone() Listing {
	out := l
	out.Images = slices.Clone(l.Images)
	if out.Images == nil {
		out.Images = []string{}
	}
	return out
}

// SetField assigns one of the editable text fields.
func (l *Listing) SetField(name, value string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FieldTitle:
		l.Title = value
	case FieldPrice:
		l.Price = FlexString(value)
	case FieldLocation:
		l.Location = value
	case FieldDescription:
		l.Description = value
	default:
		return fmt.Errorf("unknown listing field %q", name)
	}
	return nil
}

// NewDraft returns a blank listing ready for editing.
func NewDraft() Listing {
	return Listing{Images: []string{}}
}

// FlexString is a string that also decodes from a JSON number, since the
// remote store does not always keep prices as text.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("price must be a string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the underlying text.
func (f FlexString) String() string { return string(f) }
