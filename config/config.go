package config

import "github.com/caarlos0/env/v11"

// Config is populated from environment variables at startup
type Config struct {
	MongoURI    string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB     string `env:"MONGO_DB" envDefault:"fizikl"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	HTTPPort    string `env:"PORT" envDefault:"8080"`
	CORSOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
