// Package config reads the catalog settings from CATALOG_* environment
// variables, optionally seeded from .env files.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CATALOG_"

type Config struct {
	Env       string `koanf:"env" validate:"required"`
	LogLevel  string `koanf:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	LogFormat string `koanf:"log_format" validate:"required,oneof=console json"`
	Seed      bool   `koanf:"seed"`
}

// Default returns the settings used when no variable overrides them.
func Default() *Config {
	return &Config{
		Env:       "development",
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Load reads .env and .env.local, then the environment.
func Load() (*Config, error) {
	loadEnvFiles()
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}
