//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"fmt"
	"strings"
)

// Settings field names accepted by edit operations.
const (
	FieldHeroTitle    = "heroTitle"
	FieldHeroSubtitle = "heroSubtitle"
)

// Settings is the site-wide display record. It is a singleton saved wholesale.
type Settings struct {
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
}

// SetField assigns a settings field by its wire name (case-insensitive).
func (s *Settings) SetField(name, value string) error {
	switch {
	case strings.EqualFold(strings.TrimSpace(name), FieldHeroTitle):
		s.HeroTitle = value
	case strings.EqualFold(strings.TrimSpace(name), FieldHeroSubtitle):
		s.HeroSubtitle = value
	default:
		return fmt.Errorf("unknown settings field %q", name)
	}
	return nil
}
