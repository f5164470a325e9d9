package auth

// Package auth contains simple hand-written test doubles for session ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"maps"
	"sync"

	domainauth "github.com/Muhamedyehya/aqar-admin/internal/domain/auth"
	apperrors "github.com/Muhamedyehya/aqar-admin/internal/errors"
	"github.com/Muhamedyehya/aqar-admin/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionStore = (*MemorySessionStore)(nil)
	_ ports.TokenDecoder = StaticTokenDecoder{}
)

// MemorySessionStore is an in-memory session store for unit tests.
// The Fail* hooks let a test inject store errors per operation.
type MemorySessionStore struct {
	mu     sync.Mutex
	values map[string]string

	FailGet    error
	FailSet    error
	FailRemove error
	// FailSetKey limits FailSet to a single key when non-empty.
	FailSetKey string
}

// NewMemorySessionStore creates a store pre-populated with seed.
func NewMemorySessionStore(seed map[string]string) *MemorySessionStore {
	values := make(map[string]string, len(seed))
	maps.Copy(values, seed)
	return &MemorySessionStore{values: values}
}

func (m *MemorySessionStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		return "", false, m.FailGet
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemorySessionStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil && (m.FailSetKey == "" || m.FailSetKey == key) {
		return m.FailSet
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *MemorySessionStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailRemove != nil {
		return m.FailRemove
	}
	delete(m.values, key)
	return nil
}

// Snapshot returns a copy of everything currently stored.
func (m *MemorySessionStore) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	maps.Copy(out, m.values)
	return out
}

// StaticTokenDecoder returns fixed claims per token; unknown tokens are malformed.
type StaticTokenDecoder map[string]domainauth.Claims

func (d StaticTokenDecoder) Claims(token string) (domainauth.Claims, error) {
	c, ok := d[token]
	if !ok {
		return domainauth.Claims{}, apperrors.MalformedToken(errors.New("unknown token"))
	}
	return c, nil
}
