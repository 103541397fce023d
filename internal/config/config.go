// Package config loads settings from defaults, an optional YAML file,
// MOVIESEARCH_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MOVIESEARCH"

const (
	defaultCardPlaceholder   = "https://images.unsplash.com/photo-1489599511657-70c4da5e1bce?w=300&h=450&fit=crop"
	defaultDetailPlaceholder = "https://images.unsplash.com/photo-1489599511657-70c4da5e1bce?w=400&h=600&fit=crop"
)

// Config is the full application configuration.
type Config struct {
	OMDb    OMDb    `mapstructure:"omdb"`
	Search  Search  `mapstructure:"search"`
	Posters Posters `mapstructure:"posters"`
	Log     Log     `mapstructure:"log"`
}

// OMDb configures the API client.
type OMDb struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Search holds the settings of the search screen.
type Search struct {
	DefaultQuery string `mapstructure:"default_query"`
}

// Posters controls poster probing and the placeholder images.
type Posters struct {
	Probe             bool   `mapstructure:"probe"`
	CardPlaceholder   string `mapstructure:"card_placeholder"`
	DetailPlaceholder string `mapstructure:"detail_placeholder"`
}

// Log configures the file logger.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Flags returns the command-line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("base-url", "", "OMDb API endpoint")
	fs.String("api-key", "", "OMDb API key")
	fs.Duration("timeout", 0, "per-request timeout")
	fs.String("query", "", "query searched on startup")
	fs.Bool("probe-posters", true, "check that poster images load")
	fs.String("log-level", "", "log level (trace, debug, info, warn, error)")
	fs.String("log-file", "", "write logs to this file")
	return fs
}

var flagKeys = map[string]string{
	"base-url":      "omdb.base_url",
	"api-key":       "omdb.api_key",
	"timeout":       "omdb.timeout",
	"query":         "search.default_query",
	"probe-posters": "posters.probe",
	"log-level":     "log.level",
	"log-file":      "log.file",
}

// Load builds a Config. fs may be nil; when given it must already be parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := ""
	if fs != nil {
		path, _ = fs.GetString("config")
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readFile(v, path); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("omdb.base_url", "https://www.omdbapi.com/")
	v.SetDefault("omdb.api_key", "68afd1d5")
	v.SetDefault("omdb.timeout", 10*time.Second)
	v.SetDefault("search.default_query", "marvel")
	v.SetDefault("posters.probe", true)
	v.SetDefault("posters.card_placeholder", defaultCardPlaceholder)
	v.SetDefault("posters.detail_placeholder", defaultDetailPlaceholder)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// readFile reads an explicit config file, or looks for moviesearch.yaml in
// the working directory. Only the implicit file may be missing.
func readFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("moviesearch")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.OMDb.BaseURL) == "" {
		return errors.New("config: omdb.base_url is required")
	}
	if strings.TrimSpace(c.OMDb.APIKey) == "" {
		return errors.New("config: omdb.api_key is required")
	}
	if c.OMDb.Timeout <= 0 {
		return fmt.Errorf("config: omdb.timeout must be positive, got %s", c.OMDb.Timeout)
	}
	return nil
}
