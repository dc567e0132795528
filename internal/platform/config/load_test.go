package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/page-template-admin/internal/platform/config"
)

// writeConfigDir writes base.yaml plus the given profile files to a temp dir.
func writeConfigDir(t *testing.T, base string, profiles map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{"base.yaml": base}
	for name, body := range profiles {
		files[name+".yaml"] = body
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

const fixtureBase = `
server:
  port: 8080
store:
  backend: memory
templates:
  catalog_path: configs/templates.yaml
`

func TestLoad_Layers(t *testing.T) {
	dir := writeConfigDir(t, fixtureBase, map[string]string{
		"edit": "store:\n  backend: sqlite\n  dsn: file:edit.db\nlog:\n  level: debug\n",
	})

	tests := []struct {
		name  string
		env   map[string]string
		opts  []config.Option
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "profile overrides base",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Store.Backend != config.BackendSQLite || cfg.Store.DSN != "file:edit.db" {
					t.Errorf("Store = %+v, want sqlite file:edit.db", cfg.Store)
				}
				if cfg.Templates.CatalogPath != "configs/templates.yaml" {
					t.Errorf("CatalogPath = %q, want base value", cfg.Templates.CatalogPath)
				}
			},
		},
		{
			name: "defaults fill unset keys",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.ReadinessTimeout != 2*time.Second {
					t.Errorf("ReadinessTimeout = %v, want 2s", cfg.Server.ReadinessTimeout)
				}
				if cfg.Client.Retry.MaxAttempts != 3 || cfg.Client.RateLimit.BurstSize != 1 {
					t.Errorf("Client = %+v, want default retry and burst", cfg.Client)
				}
			},
		},
		{
			name: "env resolves underscored keys",
			env: map[string]string{
				"APP_SERVER_READ_TIMEOUT":       "15s",
				"APP_CLIENT_RETRY_MAX_ATTEMPTS": "7",
				"APP_STORE_DSN":                 "file:env.db",
			},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.ReadTimeout != 15*time.Second {
					t.Errorf("ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
				}
				if cfg.Client.Retry.MaxAttempts != 7 {
					t.Errorf("MaxAttempts = %d, want 7", cfg.Client.Retry.MaxAttempts)
				}
				if cfg.Store.DSN != "file:env.db" {
					t.Errorf("DSN = %q, want file:env.db", cfg.Store.DSN)
				}
			},
		},
		{
			name: "overrides beat env",
			env:  map[string]string{"APP_STORE_DSN": "file:env.db"},
			opts: []config.Option{config.WithOverrides(map[string]any{
				"store.dsn":              "file:flag.db",
				"templates.catalog_path": "/etc/pages/templates.yaml",
			})},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Store.DSN != "file:flag.db" {
					t.Errorf("DSN = %q, want file:flag.db", cfg.Store.DSN)
				}
				if cfg.Templates.CatalogPath != "/etc/pages/templates.yaml" {
					t.Errorf("CatalogPath = %q", cfg.Templates.CatalogPath)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load("edit", append([]config.Option{config.WithConfigDir(dir)}, tt.opts...)...)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := writeConfigDir(t, fixtureBase, map[string]string{
		"broken": "server:\n  port: [",
		"bad":    "store:\n  backend: postgres\n",
	})

	tests := []struct {
		profile string
		want    string
	}{
		{profile: "", want: "must not be empty"},
		{profile: "../etc", want: "path separators"},
		{profile: "a..b", want: "path traversal"},
		{profile: "missing", want: "loading profile config"},
		{profile: "broken", want: "loading profile config"},
		{profile: "bad", want: "store.backend must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			_, err := config.Load(tt.profile, config.WithConfigDir(dir))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load(%q) error = %v, want it to mention %q", tt.profile, err, tt.want)
			}
		})
	}
}

func TestLoad_ShippedProfiles(t *testing.T) {
	t.Chdir("../../..")

	tests := []struct {
		profile string
		backend string
		format  string
	}{
		{profile: "local", backend: config.BackendMemory, format: "text"},
		{profile: "dev", backend: config.BackendSQLite, format: "json"},
		{profile: "qa", backend: config.BackendCMS, format: "json"},
		{profile: "prod", backend: config.BackendCMS, format: "json"},
	}

	for _, tt := range tests {
		cfg, err := config.Load(tt.profile)
		if err != nil {
			t.Errorf("Load(%q) error = %v", tt.profile, err)
			continue
		}
		if cfg.Store.Backend != tt.backend {
			t.Errorf("%s: Store.Backend = %q, want %q", tt.profile, cfg.Store.Backend, tt.backend)
		}
		if cfg.Log.Format != tt.format {
			t.Errorf("%s: Log.Format = %q, want %q", tt.profile, cfg.Log.Format, tt.format)
		}
		if cfg.Templates.CatalogPath != "configs/templates.yaml" {
			t.Errorf("%s: CatalogPath = %q", tt.profile, cfg.Templates.CatalogPath)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_Store(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		store   config.StoreConfig
		wantErr bool
	}{
		{name: "memory", store: config.StoreConfig{Backend: "memory"}},
		{name: "cms", store: config.StoreConfig{Backend: "cms"}},
		{name: "sqlite with dsn", store: config.StoreConfig{Backend: "sqlite", DSN: "pages.db"}},
		{name: "sqlite without dsn", store: config.StoreConfig{Backend: "sqlite"}, wantErr: true},
		{name: "unknown backend", store: config.StoreConfig{Backend: "postgres"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			cfg.Store = tt.store
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RateLimitNeedsBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 10, BurstSize: 0}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for rate limit without burst")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,

			ReadinessTimeout: 2 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Store: config.StoreConfig{
			Backend: config.BackendMemory,
		},
	}
}
