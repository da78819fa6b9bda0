package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env                 string        `envconfig:"ENV" default:"dev"`                   // dev, staging, prod
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`            // debug, info, warn, error
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"json"`           // json, text
	Port                int           `envconfig:"PORT" default:"8080"`                 // HTTP server port
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"` // Graceful shutdown timeout

	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"sqlite"` // sqlite, postgres
	DatabaseFile   string `envconfig:"DATABASE_FILE" default:"membership.db"`
	DatabaseURL    string `envconfig:"DATABASE_URL"` // Required for postgres

	Issuer        string        `envconfig:"AUTH_ISSUER" required:"true"`          // Expected iss of access tokens
	Audience      []string      `envconfig:"AUTH_AUDIENCE" default:"membership"`   // Comma separated
	PublicKeyFile string        `envconfig:"AUTH_PUBLIC_KEY_FILE" required:"true"` // PEM public key of the issuer
	KeyID         string        `envconfig:"AUTH_KEY_ID" default:"default"`        // kid the key is registered under
	TokenLeeway   time.Duration `envconfig:"AUTH_LEEWAY" default:"30s"`

	RedisAddr string        `envconfig:"REDIS_ADDR"` // Empty disables the plan cache
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	ReadRateLimit  int `envconfig:"RATE_LIMIT_READ" default:"300"` // Requests per minute per caller, 0 disables
	WriteRateLimit int `envconfig:"RATE_LIMIT_WRITE" default:"60"` // Requests per minute per caller, 0 disables
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real variables win.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Issuer == "" || c.PublicKeyFile == "" {
		return errors.New("AUTH_ISSUER and AUTH_PUBLIC_KEY_FILE must be set")
	}

	switch c.DatabaseDriver {
	case "sqlite":
		if c.DatabaseFile == "" {
			return errors.New("DATABASE_FILE must be set for the sqlite driver")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be set for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.ReadRateLimit < 0 || c.WriteRateLimit < 0 {
		return errors.New("rate limits must not be negative")
	}
	return nil
}
