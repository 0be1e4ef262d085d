package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment names recognized by the detection helpers.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// ErrMissingServiceName is returned by Validate when a production deployment
// does not declare VOILA_SERVICE_NAME.
var ErrMissingServiceName = errors.New("config: VOILA_SERVICE_NAME is required in production")

// Env returns the current application environment from APP_ENV, falling back
// to NODE_ENV for compatibility with mixed deployments, defaulting to
// development.
func Env() string {
	if v := os.Getenv("APP_ENV"); v != "" {
		return v
	}
	if v := os.Getenv("NODE_ENV"); v != "" {
		return v
	}
	return EnvDevelopment
}

// IsProduction reports whether the current environment is production.
func IsProduction() bool { return Env() == EnvProduction }

// IsDevelopment reports whether the current environment is development.
func IsDevelopment() bool { return Env() == EnvDevelopment }

// ServiceName returns the service identity from VOILA_SERVICE_NAME, falling
// back to the executable name. The fallback is only acceptable outside of
// production; Validate enforces the explicit variable there.
func ServiceName() string {
	if v := os.Getenv("VOILA_SERVICE_NAME"); v != "" {
		return v
	}
	exe, err := os.Executable()
	if err != nil {
		return "app"
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}

// Validate checks startup requirements against the current environment.
// Missing required production variables are fatal and returned as errors.
// Malformed numeric VOILA_* overrides are only warned about through log,
// since every consumer has a usable default to fall back on.
func Validate(log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	for _, name := range numericOverrides {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if _, err := strconv.Atoi(v); err != nil {
			log.Warn("ignoring malformed numeric environment variable",
				slog.String("name", name),
				slog.String("value", v))
		}
	}

	if IsProduction() && os.Getenv("VOILA_SERVICE_NAME") == "" {
		return fmt.Errorf("%w: set VOILA_SERVICE_NAME to identify this deployment", ErrMissingServiceName)
	}

	return nil
}

// numericOverrides lists the toolkit variables that must parse as integers
// when present.
var numericOverrides = []string{
	"VOILA_LOGGING_BATCH_SIZE",
	"VOILA_LOGGING_FILE_MAX_SIZE_MB",
	"VOILA_LOGGING_FILE_RETENTION_DAYS",
	"VOILA_CACHE_CAPACITY",
}
