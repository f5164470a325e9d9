// Package tokencodec decodes the payload segment of a compact three-part token.
//
// No signature is verified. The claims only feed the advisory admin flag,
// the remote service remains the authority on what a token may do.
package tokencodec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/Muhamedyehya/aqar-admin/internal/domain/auth"
	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

var _ ports.TokenDecoder = (*Codec)(nil)

// Claim names recognized in the payload.
const (
	ClaimEmail   = "email"
	ClaimIsAdmin = "isAdmin"
	ClaimRole    = "role"
)

var (
	errSegmentCount = errors.New("token must have exactly three dot-separated segments")
	errNotMapping   = errors.New("token payload is not a JSON object")
)

// standard-alphabet characters mapped onto the URL-safe alphabet.
var alphabetNormalizer = strings.NewReplacer("+", "-", "/", "_")

// Codec decodes token payloads. The zero value is not usable; call New.
type Codec struct {
	parser *jwt.Parser
}

// New returns a Codec that accepts padded and unpadded segments.
func New() *Codec {
	return &Codec{parser: jwt.NewParser(jwt.WithPaddingAllowed())}
}

// Claims returns the recognized claims. A malformed token yields a
// MalformedToken error wrapping the decode failure.
func (c *Codec) Claims(token string) (domainauth.Claims, error) {
	payload, err := c.Payload(token)
	if err != nil {
		return domainauth.Claims{}, apperrors.MalformedToken(err)
	}
	return claimsFrom(payload), nil
}

// Decode returns the recognized claims, or ok=false when the token is malformed.
// It never panics.
func (c *Codec) Decode(token string) (domainauth.Claims, bool) {
	claims, err := c.Claims(token)
	return claims, err == nil
}

// Payload decodes the middle segment into a raw claims mapping.
func (c *Codec) Payload(token string) (jwt.MapClaims, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != 3 {
		return nil, errSegmentCount
	}

	seg := alphabetNormalizer.Replace(strings.TrimRight(parts[1], "="))
	raw, err := c.parser.DecodeSegment(seg)
	if err != nil {
		return nil, fmt.Errorf("decode payload segment: %w", err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	// "null" unmarshals into a nil map without error.
	if claims == nil {
		return nil, errNotMapping
	}
	return claims, nil
}

func claimsFrom(payload jwt.MapClaims) domainauth.Claims {
	var out domainauth.Claims
	if v, ok := payload[ClaimEmail].(string); ok {
		out.Email = v
	}
	if v, ok := payload[ClaimIsAdmin].(bool); ok {
		out.IsAdmin = v
	}
	if v, ok := payload[ClaimRole].(string); ok {
		out.Role = domainauth.Role(v)
	}
	return out
}

var defaultCodec = New()

// Decode decodes token with a shared Codec.
func Decode(token string) (domainauth.Claims, bool) {
	return defaultCodec.Decode(token)
}
