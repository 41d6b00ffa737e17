package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo       MongoConfig
	Redis       RedisConfig
	Upload      UploadConfig
	Vertex      VertexConfig
	ImageSearch ImageSearchConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=barber-database"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	Dir string `env:"UPLOAD_DIR, default=./uploads"`
}

// VertexConfig configures the external embedding collaborator. Project and
// token have no defaults: image search is simply unavailable without them.
type VertexConfig struct {
	Project  string `env:"VERTEX_PROJECT"`
	Location string `env:"VERTEX_LOCATION, default=us-central1"`
	Token    string `env:"VERTEX_TOKEN"`
}

type ImageSearchConfig struct {
	// Neighbors is the fixed k passed to the nearest-neighbor search.
	Neighbors int `env:"IMAGE_SEARCH_NEIGHBORS, default=5"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
