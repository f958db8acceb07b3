package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	Pagination PaginationConfig
	Seed       SeedConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type JWTConfig struct {
	Secret                 string
	Issuer                 string
	Audience               string
	AccessLifetimeMinutes  int
	RefreshLifetimeMinutes int
	ProtectFilmWrites      bool
}

// AccessTTL returns the access-token lifetime.
func (c JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessLifetimeMinutes) * time.Minute
}

// RefreshTTL returns the refresh-token lifetime.
func (c JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshLifetimeMinutes) * time.Minute
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type SeedConfig struct {
	AdminPassword string
	UserPassword  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "film-catalog")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)

	v.SetDefault("JWT_ISSUER", "film-catalog")
	v.SetDefault("JWT_AUDIENCE", "film-catalog-clients")
	v.SetDefault("JWT_ACCESS_LIFETIME_MINUTES", 5)
	v.SetDefault("JWT_REFRESH_LIFETIME_MINUTES", 3600)
	v.SetDefault("PROTECT_FILM_WRITES", false)

	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	v.SetDefault("PAGINATION_DEFAULT_PAGE_SIZE", DefaultPageSize)
	v.SetDefault("PAGINATION_MAX_PAGE_SIZE", MaxPageSize)

	v.SetDefault("SEED_ADMIN_PASSWORD", "Admin@123")
	v.SetDefault("SEED_USER_PASSWORD", "User@123")
}

// LoadConfig reads .env (optional) and lets environment variables override it.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
			CORSOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:                 v.GetString("JWT_SECRET"),
			Issuer:                 v.GetString("JWT_ISSUER"),
			Audience:               v.GetString("JWT_AUDIENCE"),
			AccessLifetimeMinutes:  v.GetInt("JWT_ACCESS_LIFETIME_MINUTES"),
			RefreshLifetimeMinutes: v.GetInt("JWT_REFRESH_LIFETIME_MINUTES"),
			ProtectFilmWrites:      v.GetBool("PROTECT_FILM_WRITES"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
		Pagination: PaginationConfig{
			DefaultPageSize: v.GetInt("PAGINATION_DEFAULT_PAGE_SIZE"),
			MaxPageSize:     v.GetInt("PAGINATION_MAX_PAGE_SIZE"),
		},
		Seed: SeedConfig{
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
			UserPassword:  v.GetString("SEED_USER_PASSWORD"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
