package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loader)

// WithConfigDir reads the YAML layers from dir instead of "configs".
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// WithOverrides applies dotted-key values above every other layer, e.g.
// {"store.dsn": "file:pages.db"}. Command-line flags use it to win over the
// environment.
func WithOverrides(values map[string]any) Option {
	return func(l *loader) {
		for key, val := range values {
			l.overrides[key] = val
		}
	}
}

type loader struct {
	k         *koanf.Koanf
	dir       string
	overrides map[string]any
}

// Load builds the configuration for profile from these layers, each one
// overriding the one before:
//
//	built-in defaults
//	{dir}/base.yaml
//	{dir}/{profile}.yaml
//	APP_* environment variables (APP_STORE_BACKEND -> store.backend)
//	WithOverrides values
//
// The result is validated; every invalid field is reported.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{k: koanf.New("."), dir: defaultConfigDir, overrides: map[string]any{}}
	for _, opt := range opts {
		opt(l)
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"defaults", func() error { return l.set(defaults()) }},
		{"base config", func() error { return l.yaml("base") }},
		{"profile config", func() error { return l.yaml(profile) }},
		{"environment", l.env},
		{"overrides", func() error { return l.set(l.overrides) }},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			return nil, fmt.Errorf("loading %s: %w", s.name, err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (l *loader) set(values map[string]any) error {
	for key, val := range values {
		if err := l.k.Set(key, val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func (l *loader) yaml(name string) error {
	path := filepath.Join(l.dir, name+".yaml")
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// env maps APP_* variables onto keys already known from the lower layers, so
// APP_SERVER_READ_TIMEOUT resolves to server.read_timeout rather than
// server.read.timeout. Unknown variables fall back to "_" -> ".".
func (l *loader) env() error {
	known := make(map[string]string)
	for _, key := range l.k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return l.k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
