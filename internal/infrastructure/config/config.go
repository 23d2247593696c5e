package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all console configuration
type Config struct {
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
}

// APIConfig holds backend connection settings
type APIConfig struct {
	BaseURL   string // backend root, e.g. https://erp.example.com
	CSRFPath  string // public endpoint used to induce the csrftoken cookie
	UserAgent string
}

// SessionConfig holds local session persistence settings
type SessionConfig struct {
	CookieFile string // where session cookies are stored between runs
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with ERP_CONSOLE_ prefix (e.g. ERP_CONSOLE_API_BASE_URL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "erp-console"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("ERP_CONSOLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		API: APIConfig{
			BaseURL:   v.GetString("api.base_url"),
			CSRFPath:  v.GetString("api.csrf_path"),
			UserAgent: v.GetString("api.user_agent"),
		},
		Session: SessionConfig{
			CookieFile: v.GetString("session.cookie_file"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.API.CSRFPath == "" {
		cfg.API.CSRFPath = "/api/auth/csrf/"
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = "erp-console/1.0"
	}
	if cfg.Session.CookieFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.Session.CookieFile = filepath.Join(dir, "erp-console", "session.json")
		} else {
			cfg.Session.CookieFile = ".erp-console-session.json"
		}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required (set ERP_CONSOLE_API_BASE_URL or config.toml)")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https, got %q", u.Scheme)
	}
	if !strings.HasPrefix(c.API.CSRFPath, "/") {
		return fmt.Errorf("api.csrf_path must be an absolute path, got %q", c.API.CSRFPath)
	}
	return nil
}
