package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Duncanian/develop-v2/internal/domain"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Auth     AuthConfig     `yaml:"auth"`
	Orders   OrdersConfig   `yaml:"orders"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	// URL overrides the individual fields when set (DATABASE_URL env).
	URL string `yaml:"-"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type AuthConfig struct {
	// Secret signs and verifies every token; customer and admin gates share it.
	Secret   string `yaml:"secret"`
	TokenTTL int    `yaml:"token_ttl_hours"`
}

type OrdersConfig struct {
	DedupPolicy domain.DedupPolicy `yaml:"dedup_policy"`
}

// Load reads the yaml config at path and overlays environment variables.
// A .env file is honored when present. SECRET_KEY overrides auth.secret and
// DATABASE_URL overrides the database block.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}

	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth secret is not configured (auth.secret or SECRET_KEY)")
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 24
	}
	if cfg.Orders.DedupPolicy == "" {
		cfg.Orders.DedupPolicy = domain.DedupExact
	}
	if !cfg.Orders.DedupPolicy.Valid() {
		return nil, fmt.Errorf("invalid orders.dedup_policy: %q", cfg.Orders.DedupPolicy)
	}

	return &cfg, nil
}

// ConnString builds a pgx connection string, preferring the URL override.
func (c DatabaseConfig) ConnString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Database)
}
