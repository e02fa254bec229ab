package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment-driven setting. Values are loaded with
// envconfig after godotenv has populated the process environment.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	MongoURI    string `envconfig:"MONGODB_URI" required:"true"`
	MongoDbName string `envconfig:"MONGODB_DB" default:"fridgechef"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`

	SMTP SMTPConfig
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     string `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASS"`
	From     string `envconfig:"SMTP_FROM"`

	// Base URL the reset-password link points at.
	ResetBaseURL string `envconfig:"RESET_BASE_URL" default:"http://localhost:3000/reset-password"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config from environment: %w", err)
	}
	return cfg, nil
}
