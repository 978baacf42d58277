package server

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the server's environment-derived configuration.
type Config struct {
	Host         string
	Port         int
	LogLevel     string
	QuotesFile   string
	DatabaseURL  string
	OTLPEndpoint string
}

// LoadConfig reads configuration from the environment, failing fast with a
// specific message when a required variable is missing.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", 3000)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Host:         v.GetString("HOST"),
		Port:         v.GetInt("PORT"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		QuotesFile:   v.GetString("QUOTES_FILE_PATH"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
	if cfg.QuotesFile == "" {
		return nil, errors.New("QUOTES_FILE_PATH must be set to the quote corpus JSON file")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT %d is not a valid TCP port", cfg.Port)
	}
	return cfg, nil
}

// Addr is the host:port the server binds.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
