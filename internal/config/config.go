// Package config loads tool configuration from viper (flags, environment,
// optional config file) and validates it.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all settings for the CLI and the optional HTTP mode.
type Config struct {
	// OutputPath is where the suggested-cards CSV is written.
	OutputPath string `mapstructure:"output_path" validate:"required"`

	// RulesPath optionally points at a YAML heuristics profile.
	RulesPath string `mapstructure:"rules_path"`

	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// ServerConfig applies only to `ankigen serve`.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`

	// APIKey, when set, is required as a bearer token on /api routes.
	APIKey string `mapstructure:"api_key"`

	// MaxUploadBytes caps the size of uploaded documents.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"gt=0"`
}

// SetDefaults registers the default values on a viper instance. Call before
// binding flags so explicit settings win.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output_path", "output/suggested_cards.csv")
	v.SetDefault("rules_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.port", 8070)
	v.SetDefault("server.api_key", "")
	v.SetDefault("server.max_upload_bytes", int64(52428800)) // 50MB
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
