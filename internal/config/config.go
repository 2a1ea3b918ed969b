package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type HTTPConfig struct {
	Host string
	Port int
	// PublicURL prefixes every hypermedia link, e.g. "https://api.example.com".
	PublicURL string
}

type DBConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
	AutoMigrate     bool
}

type CacheConfig struct {
	Backend       string
	Prefix        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type PaginationConfig struct {
	DefaultSize int
	MaxSize     int
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	DB          DBConfig
	Cache       CacheConfig
	Pagination  PaginationConfig
	CORSOrigins []string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	v.SetDefault("DB_AUTO_MIGRATE", true)

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Host:      v.GetString("HTTP_HOST"),
			Port:      v.GetInt("HTTP_PORT"),
			PublicURL: strings.TrimRight(v.GetString("HTTP_PUBLIC_URL"), "/"),
		},
		DB: DBConfig{
			Driver:          strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		Cache: CacheConfig{
			Backend:       strings.ToLower(strings.TrimSpace(v.GetString("CACHE_BACKEND"))),
			Prefix:        v.GetString("CACHE_PREFIX"),
			RedisAddr:     v.GetString("REDIS_ADDR"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
		},
		Pagination: PaginationConfig{
			DefaultSize: v.GetInt("PAGINATION_DEFAULT_SIZE"),
			MaxSize:     v.GetInt("PAGINATION_MAX_SIZE"),
		},
		CORSOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = DriverPostgres
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = CacheMemory
	}
	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = "ocean"
	}
	if cfg.Pagination.DefaultSize <= 0 {
		cfg.Pagination.DefaultSize = 5
	}
	if cfg.Pagination.MaxSize <= 0 {
		cfg.Pagination.MaxSize = 100
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	switch cfg.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.DB.Driver)
	}
	if cfg.DB.ConnMaxLifetime != "" {
		if _, err := time.ParseDuration(cfg.DB.ConnMaxLifetime); err != nil {
			return fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
		}
	}
	switch cfg.Cache.Backend {
	case CacheMemory:
	case CacheRedis:
		if cfg.Cache.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be %q or %q, got %q", CacheMemory, CacheRedis, cfg.Cache.Backend)
	}
	if cfg.Pagination.DefaultSize > cfg.Pagination.MaxSize {
		return fmt.Errorf("PAGINATION_DEFAULT_SIZE (%d) exceeds PAGINATION_MAX_SIZE (%d)", cfg.Pagination.DefaultSize, cfg.Pagination.MaxSize)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
