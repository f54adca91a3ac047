// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	return load(envFile)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(path); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.PB.BaseURL = trimBaseURL(cfg.PB.BaseURL)
	cfg.GitLab.BaseURL = trimBaseURL(cfg.GitLab.BaseURL)
	cfg.Journal.Backend = strings.ToLower(strings.TrimSpace(cfg.Journal.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("http.request_timeout", 10*time.Second)
	v.SetDefault("upstream.timeout", time.Duration(0))

	v.SetDefault("pb.base_url", "https://api.productboard.com")
	v.SetDefault("pb.api_version", "1")
	v.SetDefault("pb.max_pages", 50)

	v.SetDefault("gitlab.base_url", "https://gitlab.com/api/v4")

	v.SetDefault("journal.backend", JournalNone)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "relay_db")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.migrations_dir", "db/migrations")
	v.SetDefault("postgres.migrate_timeout", 10*time.Second)
	v.SetDefault("postgres.query_timeout", 2*time.Second)
	v.SetDefault("postgres.max_conns", 4)
	v.SetDefault("postgres.min_conns", 1)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.shutdown_timeout",
		"http.request_timeout",
		"upstream.timeout",
		"pb.integration_id",
		"pb.token",
		"pb.base_url",
		"pb.api_version",
		"pb.max_pages",
		"gitlab.project_id",
		"gitlab.token",
		"gitlab.base_url",
		"journal.backend",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.db_name",
		"postgres.ssl_mode",
		"postgres.migrations_dir",
		"postgres.migrate_timeout",
		"postgres.query_timeout",
		"postgres.max_conns",
		"postgres.min_conns",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	// PORT is what most hosting platforms inject.
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
}
