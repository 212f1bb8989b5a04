package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. QUILL_SERVER_PORT or QUILL_DATABASE_URL.
const EnvPrefix = "QUILL"

// Default values applied before any file or environment source.
const (
	DefaultPort          = 8000
	DefaultLogLevel      = "info"
	DefaultMaxConns      = 20
	DefaultMinConns      = 2
	DefaultSnapshotReads = true
)

// keys lists every setting so that AutomaticEnv can resolve values that
// appear in neither the defaults nor a config file.
var keys = []string{
	"server.port",
	"server.log_level",
	"database.url",
	"database.max_conns",
	"database.min_conns",
	"database.snapshot_reads",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom behaves like Load but reads the config file at path when path is
// not empty. A missing default config.yaml is not an error; a missing
// explicit path is.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("database.max_conns", DefaultMaxConns)
	v.SetDefault("database.min_conns", DefaultMinConns)
	v.SetDefault("database.snapshot_reads", DefaultSnapshotReads)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
