package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Loyalty  LoyaltyConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for authentication
}

// LoyaltyConfig controls loyalty-points redemption.
type LoyaltyConfig struct {
	// PointValue is the currency value of a single loyalty point.
	PointValue decimal.Decimal
}

// Load reads configuration from environment variables, with an optional .env file
func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("READ_TIMEOUT", 15)
	viper.SetDefault("WRITE_TIMEOUT", 15)
	viper.SetDefault("SHUTDOWN_TIMEOUT", 30)
	viper.SetDefault("API_KEYS", "apitest")
	viper.SetDefault("POINT_VALUE", "1000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// A missing .env file is fine; env vars and defaults still apply
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	pointValue, err := decimal.NewFromString(viper.GetString("POINT_VALUE"))
	if err != nil {
		return nil, fmt.Errorf("invalid POINT_VALUE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            viper.GetString("PORT"),
			Host:            viper.GetString("HOST"),
			ReadTimeout:     viper.GetInt("READ_TIMEOUT"),
			WriteTimeout:    viper.GetInt("WRITE_TIMEOUT"),
			ShutdownTimeout: viper.GetInt("SHUTDOWN_TIMEOUT"),
		},
		Auth: AuthConfig{
			APIKeys: strings.Split(viper.GetString("API_KEYS"), ","),
		},
		Loyalty: LoyaltyConfig{
			PointValue: pointValue,
		},
		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	if !c.Loyalty.PointValue.IsPositive() {
		return fmt.Errorf("POINT_VALUE must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
