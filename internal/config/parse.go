package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/Faizanmoriani2/bignote/pkg/logger/slogx"
)

const usageHeader = "bignote server is configured from the environment and an optional .env file."

// Parse reads the environment, optionally seeded from a .env file in the
// working directory.
func Parse() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %v", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validate cfg: %w", err)
	}

	return cfg, nil
}

// Usage writes the list of recognised variables with their defaults.
func Usage(w io.Writer) {
	header := usageHeader
	cleanenv.FUsage(w, &Config{}, &header)()
}

func (c Config) validate() error {
	var errs []error

	if _, err := slogx.ParseLevel(c.App.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Upload.MaxBytes <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}
	if c.Upload.MaxFiles <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_FILES must be positive"))
	}
	if c.Upload.Parallelism <= 0 {
		errs = append(errs, errors.New("UPLOAD_PARALLELISM must be positive"))
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("HTTP_ALLOWED_ORIGINS must not be empty"))
	}

	return errors.Join(errs...)
}
