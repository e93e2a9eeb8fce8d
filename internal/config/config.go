// Package config loads the service configuration.
//
// Values come from the environment. When CONFIG_PATH points at a YAML
// file it is read first and environment variables override it.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration
type Config struct {
	// Env selects the log format: dev, staging or prod
	Env      string   `yaml:"env" env:"ENV" env-default:"dev"`
	HTTP     HTTP     `yaml:"http"`
	Postgres Postgres `yaml:"postgres"`
	Redis    Redis    `yaml:"redis"`
	Quiz     Quiz     `yaml:"quiz"`
	Cache    Cache    `yaml:"cache"`
}

// HTTP holds the listener settings
type HTTP struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Postgres holds the configuration for PostgreSQL connection
type Postgres struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName   string `yaml:"db" env:"POSTGRES_DB" env-default:"trivia"`
	SSLMode  string `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
}

// ConnString renders the pgx connection URL
func (p Postgres) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// Redis holds the Redis configuration
type Redis struct {
	Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"true"`
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Quiz tunes quiz selection.
//
// The player sends zero-based category ids while the store numbers
// categories from one, so CategoryOffset is added to the requested id.
type Quiz struct {
	AllCategoriesType string        `yaml:"all_categories_type" env:"QUIZ_ALL_CATEGORIES_TYPE" env-default:"click"`
	CategoryOffset    int           `yaml:"category_offset" env:"QUIZ_CATEGORY_OFFSET" env-default:"1"`
	RateLimit         int           `yaml:"rate_limit" env:"QUIZ_RATE_LIMIT" env-default:"120"`
	RateWindow        time.Duration `yaml:"rate_window" env:"QUIZ_RATE_WINDOW" env-default:"1m"`
}

// Cache configures the Redis read-through caches
type Cache struct {
	CategoryTTL time.Duration `yaml:"category_ttl" env:"CACHE_CATEGORY_TTL" env-default:"5m"`
}

// Load reads the configuration
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}
