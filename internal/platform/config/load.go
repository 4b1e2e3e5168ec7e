package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables that override configuration.
	EnvPrefix = "APP_"

	// ProfileEnv names the environment variable holding the profile.
	ProfileEnv = "APP_PROFILE"

	defaultConfigDir = "configs"
	keyDelim         = "."
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// The default is "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverrides sets dotted keys that win over every other source. The
// binaries feed their command-line flags through it. Empty string values
// are ignored so unset flags do not clobber lower layers.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) {
		for k, v := range values {
			if s, ok := v.(string); ok && s == "" {
				continue
			}
			o.overrides[k] = v
		}
	}
}

// layer is one configuration source applied by Load.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load builds the configuration for profile from, lowest precedence first:
//
//	in-code defaults
//	{configDir}/base.yaml
//	{configDir}/{profile}.yaml
//	APP_* environment variables
//	WithOverrides values
//
// Environment variables are matched against the keys known after the file
// layers, so field names containing underscores resolve unambiguously:
//
//	APP_SERVER_PORT               -> server.port
//	APP_STORE_BUSY_TIMEOUT        -> store.busy_timeout
//	APP_PROJECTOR_REINDEX_WORKERS -> projector.reindex_workers
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, overrides: map[string]any{}}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(keyDelim)

	files := []layer{
		{name: "defaults", provider: confmap.Provider(defaults(), keyDelim)},
		{name: "base config", provider: file.Provider(filepath.Join(o.configDir, "base.yaml")), parser: yaml.Parser()},
		{name: "profile " + profile, provider: file.Provider(filepath.Join(o.configDir, profile+".yaml")), parser: yaml.Parser()},
	}
	if err := loadLayers(k, files); err != nil {
		return nil, err
	}

	// The env lookup needs every key the files could define.
	overlays := []layer{
		{name: "environment", provider: envProvider(buildEnvLookup(k.Keys()))},
		{name: "overrides", provider: confmap.Provider(maps.Clone(o.overrides), keyDelim)},
	}
	if err := loadLayers(k, overlays); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for profile %q: %w", profile, err)
	}
	return &cfg, nil
}

func loadLayers(k *koanf.Koanf, layers []layer) error {
	for _, l := range layers {
		if err := k.Load(l.provider, l.parser); err != nil {
			return fmt.Errorf("loading %s: %w", l.name, err)
		}
	}
	return nil
}

func envProvider(lookup map[string]string) *env.Env {
	return env.Provider(keyDelim, env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// APP_PROFILE selects the files; it is not a config key.
			if key == ProfileEnv {
				return "", nil
			}
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			if known, ok := lookup[key]; ok {
				return known, value
			}
			return strings.ReplaceAll(key, "_", keyDelim), value
		},
	})
}

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

// buildEnvLookup maps the underscore form of each known key back to it,
// e.g. "client_retry_max_attempts" to "client.retry.max_attempts".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, keyDelim, "_")] = key
	}
	return lookup
}
