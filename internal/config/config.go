package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"datepick/internal/format"
	"datepick/internal/logging"
	"datepick/internal/model"

	"github.com/spf13/viper"
)

const envPrefix = "DATEPICK"

// Config is the resolved picker configuration.
type Config struct {
	model.Constraints `mapstructure:",squash"`

	Timezone    string `mapstructure:"timezone"`
	LogLevel    string `mapstructure:"log_level"`
	Format      string `mapstructure:"format"`
	Pretty      bool   `mapstructure:"pretty"`
	HistoryPath string `mapstructure:"history_path"`

	DatePlaceholder string `mapstructure:"date_placeholder"`
	TimePlaceholder string `mapstructure:"time_placeholder"`
}

// InvalidError reports a configuration value that cannot be used.
type InvalidError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("config %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *InvalidError) Unwrap() error { return e.Err }

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.datepick).
	if v := strings.TrimSpace(os.Getenv(envPrefix + "_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datepick"), nil
}

// New returns a viper instance with defaults, config search paths and
// DATEPICK_* environment lookup wired. Callers bind their flags on it and
// then call Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("datepick")
	v.SetConfigType("yaml")
	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", string(model.ModeBoth))
	v.SetDefault("min_date", "")
	v.SetDefault("max_date", "")
	v.SetDefault("min_time", "")
	v.SetDefault("max_time", "")
	v.SetDefault("timezone", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("format", "json")
	v.SetDefault("pretty", false)
	v.SetDefault("date_placeholder", "yyyy-MM-dd")
	v.SetDefault("time_placeholder", "HH:mm")
	if dir, err := Dir(); err == nil {
		v.SetDefault("history_path", filepath.Join(dir, "history.sqlite"))
	} else {
		v.SetDefault("history_path", "")
	}
}

// Load reads the optional config file and resolves the final Config.
// Priority: bound flags, environment, config file, defaults.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes the mode and rejects unknown modes, formats, log
// levels and timezones. Bound strings are not checked here: malformed bounds are
// diagnostics, not configuration errors.
func (c *Config) Validate() error {
	mode, err := model.ParseMode(string(c.Mode))
	if err != nil {
		return &InvalidError{Key: "mode", Value: string(c.Mode), Err: err}
	}
	c.Mode = mode
	if !format.Valid(c.Format) {
		return &InvalidError{Key: "format", Value: c.Format, Err: fmt.Errorf("expected one of %s", strings.Join(format.Formats, ", "))}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return &InvalidError{Key: "log_level", Value: c.LogLevel, Err: err}
	}
	if _, err := c.Location(); err != nil {
		return &InvalidError{Key: "timezone", Value: c.Timezone, Err: err}
	}
	return nil
}

// Location resolves Timezone; empty means the process-local zone.
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	return time.LoadLocation(strings.TrimSpace(c.Timezone))
}
