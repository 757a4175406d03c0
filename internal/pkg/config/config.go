package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
	Mongo   MongoConfig
}

// BackendConfig selects the content backend. The default matches the local
// development server.
type BackendConfig struct {
	BaseURL string `env:"API_BASE_URL, default=http://localhost:5001"`
}

// SessionConfig selects where the admin credential is persisted.
type SessionConfig struct {
	// Backend is "file" or "redis".
	Backend string `env:"SESSION_BACKEND, default=file"`
	File    string `env:"SESSION_FILE,    default=data/session"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// MongoConfig configures the submission journal. An empty URI disables it.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=site_gateway"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
