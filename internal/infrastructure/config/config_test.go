package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the working directory and user config dir inside the
// test's tempdir so no real config.toml leaks into the run.
func isolate(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ERP_CONSOLE_API_BASE_URL", "https://erp.electrocom.in")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://erp.electrocom.in", cfg.API.BaseURL)
	assert.Equal(t, "/api/auth/csrf/", cfg.API.CSRFPath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.NotEmpty(t, cfg.Session.CookieFile)
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	content := `[api]
base_url = "http://localhost:8000"
user_agent = "erp-console/test"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile("config.toml", []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, "erp-console/test", cfg.API.UserAgent)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("config.toml", []byte("[api]\nbase_url = \"http://localhost:8000\"\n"), 0o644))
	t.Setenv("ERP_CONSOLE_API_BASE_URL", "https://erp.electrocom.in")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://erp.electrocom.in", cfg.API.BaseURL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing base url"},
		{
			name: "non-http scheme",
			env:  map[string]string{"ERP_CONSOLE_API_BASE_URL": "ftp://erp.electrocom.in"},
		},
		{
			name: "relative csrf path",
			env: map[string]string{
				"ERP_CONSOLE_API_BASE_URL": "http://localhost:8000",
				"ERP_CONSOLE_API_CSRF_PATH": "csrf/",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDefaultCookieFileLocation(t *testing.T) {
	isolate(t)
	t.Setenv("ERP_CONSOLE_API_BASE_URL", "http://localhost:8000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "session.json", filepath.Base(cfg.Session.CookieFile))
	assert.Contains(t, cfg.Session.CookieFile, "erp-console")
}
