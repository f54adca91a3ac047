package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Journal backends understood by repository.New.
const (
	JournalNone     = "none"
	JournalPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	PB       PBConfig       `mapstructure:"pb"`
	GitLab   GitLabConfig   `mapstructure:"gitlab"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.PB.IntegrationID == "" {
		return errors.New("pb.integration_id is required")
	}
	if c.PB.Token == "" {
		return errors.New("pb.token is required")
	}
	if c.PB.BaseURL == "" {
		return errors.New("pb.base_url is required")
	}
	if c.GitLab.ProjectID == "" {
		return errors.New("gitlab.project_id is required")
	}
	if c.GitLab.Token == "" {
		return errors.New("gitlab.token is required")
	}
	if c.GitLab.BaseURL == "" {
		return errors.New("gitlab.base_url is required")
	}

	switch c.Journal.Backend {
	case JournalNone:
	case JournalPostgres:
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return errors.New("postgres credentials are required")
		}
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
	default:
		return fmt.Errorf("unknown journal.backend %q", c.Journal.Backend)
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains inbound transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// UpstreamConfig contains outbound transport settings. A zero Timeout leaves
// the transport default in place.
type UpstreamConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// PBConfig describes the Productboard plugin integration.
type PBConfig struct {
	IntegrationID string `mapstructure:"integration_id"`
	Token         string `mapstructure:"token"`
	BaseURL       string `mapstructure:"base_url"`
	APIVersion    string `mapstructure:"api_version"`
	MaxPages      int    `mapstructure:"max_pages"`
}

// Authorization returns the bearer header value.
func (p PBConfig) Authorization() string {
	return "Bearer " + p.Token
}

// GitLabConfig describes the target GitLab project.
type GitLabConfig struct {
	ProjectID string `mapstructure:"project_id"`
	Token     string `mapstructure:"token"`
	BaseURL   string `mapstructure:"base_url"`
}

// JournalConfig selects the delivery journal backend.
type JournalConfig struct {
	Backend string `mapstructure:"backend"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

func trimBaseURL(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "/")
}
