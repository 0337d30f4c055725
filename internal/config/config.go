package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQL   = "sql"
	DriverMongo = "mongo"

	defaultJWTSecret = "change-me-jwt-secret"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	AppPort  string `mapstructure:"APP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	StoreDriver string `mapstructure:"STORE_DRIVER"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	MongoURL    string `mapstructure:"MONGO_URL"`
	MongoDB     string `mapstructure:"MONGO_DB"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`

	CORSOrigins    string `mapstructure:"CORS_ORIGINS"`
	AuthRatePerMin int    `mapstructure:"AUTH_RATE_PER_MIN"`
	SeedOnStart    bool   `mapstructure:"SEED_ON_START"`
}

// Load reads an optional .env file, then config.yaml (if present) and the
// environment. Environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]any{
		"APP_ENV":           "dev",
		"APP_PORT":          "8080",
		"LOG_LEVEL":         "info",
		"STORE_DRIVER":      DriverSQL,
		"DATABASE_URL":      "buildconnect.db",
		"MONGO_URL":         "mongodb://localhost:27017",
		"MONGO_DB":          "buildconnect",
		"JWT_SECRET":        defaultJWTSecret,
		"JWT_TTL":           "168h",
		"REDIS_ADDR":        "",
		"REDIS_PASSWORD":    "",
		"REDIS_DB":          0,
		"CACHE_TTL":         "5m",
		"CORS_ORIGINS":      "*",
		"AUTH_RATE_PER_MIN": 20,
		"SEED_ON_START":     true,
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

func (c *Config) Validate() error {
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be > 0")
	}
	if c.AuthRatePerMin <= 0 {
		return fmt.Errorf("AUTH_RATE_PER_MIN must be > 0")
	}
	switch c.StoreDriver {
	case DriverSQL:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL must not be empty")
		}
	case DriverMongo:
		if strings.TrimSpace(c.MongoURL) == "" || strings.TrimSpace(c.MongoDB) == "" {
			return fmt.Errorf("MONGO_URL and MONGO_DB must not be empty")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: %s, %s", DriverSQL, DriverMongo)
	}

	if c.IsProduction() {
		trimmed := strings.TrimSpace(c.JWTSecret)
		if trimmed == "" || trimmed == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

// AllowedOrigins splits CORS_ORIGINS. A single "*" means any origin.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
