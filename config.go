package pocketrest

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the client settings read from the environment.
type Config struct {
	URL        string        `env:"POCKETREST_URL"`
	Timeout    time.Duration `env:"POCKETREST_TIMEOUT" envDefault:"30s"`
	StorageKey string        `env:"POCKETREST_STORAGE_KEY" envDefault:"rest_auth"`
	UserAgent  string        `env:"POCKETREST_USER_AGENT" envDefault:"pocketrest-go/1.0"`
}

// LoadConfig reads Config from the process environment. Listed .env files are
// loaded first and must exist; without files an optional ./.env is tried.
// Variables already set in the environment win over file values.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadEnvFile, err)
		}
	} else {
		// The default .env file is optional.
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}
	return cfg, nil
}

// NewFromConfig creates a Client from cfg. Extra options are applied after the
// config-derived ones.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if cfg.URL == "" {
		return nil, ErrMissingBaseURL
	}

	base := []Option{
		WithTimeout(cfg.Timeout),
		WithUserAgent(cfg.UserAgent),
		WithStorageKey(cfg.StorageKey),
	}
	return New(cfg.URL, append(base, opts...)...), nil
}
