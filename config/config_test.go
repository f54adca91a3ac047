package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PB_INTEGRATION_ID", "int-1")
	t.Setenv("PB_TOKEN", "pb-secret")
	t.Setenv("GITLAB_PROJECT_ID", "42")
	t.Setenv("GITLAB_TOKEN", "gl-secret")
	for _, k := range []string{"PORT", "SERVER_PORT", "PB_BASE_URL", "GITLAB_BASE_URL", "JOURNAL_BACKEND", "UPSTREAM_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "0.0.0.0:3000", cfg.ServerAddr())
	require.Equal(t, "https://api.productboard.com", cfg.PB.BaseURL)
	require.Equal(t, "1", cfg.PB.APIVersion)
	require.Equal(t, "https://gitlab.com/api/v4", cfg.GitLab.BaseURL)
	require.Equal(t, JournalNone, cfg.Journal.Backend)
	require.Equal(t, time.Duration(0), cfg.Upstream.Timeout)
	require.Equal(t, "Bearer pb-secret", cfg.PB.Authorization())
	require.Equal(t, "int-1", cfg.PB.IntegrationID)
	require.Equal(t, "42", cfg.GitLab.ProjectID)
}

func TestLoadPortAndOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8081")
	t.Setenv("PB_BASE_URL", "http://pb.local/")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Server.Port)
	require.Equal(t, "http://pb.local", cfg.PB.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	setRequired(t)
	t.Setenv("GITLAB_PROJECT_ID", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GITLAB_PROJECT_ID=from-file\n"), 0o600))

	cfg, err := load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.GitLab.ProjectID)
}

func TestValidate(t *testing.T) {
	base := Config{
		Server:  ServerConfig{Port: 3000},
		PB:      PBConfig{IntegrationID: "i", Token: "t", BaseURL: "http://pb"},
		GitLab:  GitLabConfig{ProjectID: "1", Token: "t", BaseURL: "http://gl"},
		Journal: JournalConfig{Backend: JournalNone},
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "no_pb_token", mutate: func(c *Config) { c.PB.Token = "" }},
		{name: "no_integration", mutate: func(c *Config) { c.PB.IntegrationID = "" }},
		{name: "no_project", mutate: func(c *Config) { c.GitLab.ProjectID = "" }},
		{name: "no_gitlab_token", mutate: func(c *Config) { c.GitLab.Token = "" }},
		{name: "unknown_journal", mutate: func(c *Config) { c.Journal.Backend = "mongo" }},
		{name: "postgres_without_db", mutate: func(c *Config) { c.Journal.Backend = JournalPostgres }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
