package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SessionBackend selects where the persisted session keys live.
type SessionBackend string

const (
	// SessionBackendSQLite keeps the session in a local SQLite file.
	SessionBackendSQLite SessionBackend = "sqlite"
	// SessionBackendRedis keeps the session in Redis, shared between consoles.
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (b *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "sqlite", "redis":
		*b = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: sqlite, redis)", v)
	}
}

// SessionConfig configures session persistence.
type SessionConfig struct {
	Backend SessionBackend `env:"BACKEND" envDefault:"sqlite"`

	// SQLitePath is the session database file. Empty means
	// ~/.local/share/aqar-admin/session.db.
	SQLitePath string `env:"SQLITE_PATH"`

	// RedisPrefix namespaces the session keys in Redis.
	RedisPrefix string `env:"REDIS_PREFIX" envDefault:"aqar:session:"`
}

// Sanitize fills in the default SQLite path and prefix.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = SessionBackendSQLite
	}
	s.SQLitePath = strings.TrimSpace(s.SQLitePath)
	if s.SQLitePath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			s.SQLitePath = filepath.Join(home, ".local", "share", "aqar-admin", "session.db")
		}
	}
	if strings.TrimSpace(s.RedisPrefix) == "" {
		s.RedisPrefix = "aqar:session:"
	}
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelPort       string   `env:"SENTINEL_PORT"        envDefault:"26379"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}
