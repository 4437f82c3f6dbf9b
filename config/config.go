package config

import (
	"io/fs"
	"strings"

	koanf "github.com/knadh/koanf/v2"
	"github.com/knadh/koanf/providers/env"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the environment-variable prefix Load scans under, following
// the "PHONENUMBER_" convention: PHONENUMBER_METADATA_PREFIX,
// PHONENUMBER_LOG_LEVEL.
const EnvPrefix = "PHONENUMBER_"

// Config holds the settings phonenumber.Instance and metadata.Store need at
// construction time.
type Config struct {
	// MetadataPrefix is the metadata file-name prefix metadata.Options.Prefix
	// is built from. Defaults to "phonemetadata".
	MetadataPrefix string

	// ExternalMetadataFS, when non-nil, overrides the module's embedded
	// metadata set — used to point a Store at an operator-supplied region
	// table instead of the data shipped with this module.
	ExternalMetadataFS fs.FS

	// LogLevel is the default zap level for components that don't have
	// their own logger injected.
	LogLevel zapcore.Level
}

// DefaultConfig returns the Config an Instance uses when none is supplied.
func DefaultConfig() Config {
	return Config{
		MetadataPrefix: "phonemetadata",
		LogLevel:       zapcore.WarnLevel,
	}
}

// WithMetadataPrefix sets the metadata file-name prefix.
func (c Config) WithMetadataPrefix(prefix string) Config {
	c.MetadataPrefix = prefix
	return c
}

// WithExternalMetadataFS overrides the filesystem metadata is read from.
func (c Config) WithExternalMetadataFS(fsys fs.FS) Config {
	c.ExternalMetadataFS = fsys
	return c
}

// WithLogLevel sets the default log level.
func (c Config) WithLogLevel(level zapcore.Level) Config {
	c.LogLevel = level
	return c
}

// Load overlays environment variables onto DefaultConfig, using the same
// koanf stack the metadata package uses for its own declarative records.
// Unset or unrecognized variables leave the corresponding field at its
// default.
func Load() (Config, error) {
	cfg := DefaultConfig()

	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyTransform), nil); err != nil {
		return cfg, err
	}

	if prefix := k.String("metadata_prefix"); prefix != "" {
		cfg.MetadataPrefix = prefix
	}
	if raw := k.String("log_level"); raw != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(raw)); err == nil {
			cfg.LogLevel = level
		}
	}

	return cfg, nil
}

func envKeyTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
