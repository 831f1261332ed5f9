// Package config loads the service configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every externally tunable setting. It is constructed once in
// main and passed explicitly to the components that need it.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB"  envDefault:"mytineraries"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"mytineraries"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"  envDefault:"720h"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
