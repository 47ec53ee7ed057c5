package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load applies the first env file found among candidates, searched upward
// to the module root, then reads the configuration from the environment.
// Variables already set in the process win over file values. A missing
// file is not an error.
func Load(candidates ...string) (*App, error) {
	logger := slog.Default()
	if path, ok := resolveEnvFile(candidates); ok {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		logger.Info("Environment file applied", "path", path)
	} else {
		logger.Debug("No environment file, using process environment only")
	}
	return loadFromEnv()
}

func resolveEnvFile(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		candidates = []string{".env"}
	}
	for _, name := range candidates {
		if path, err := FindEnvFile(name); err == nil {
			return path, true
		}
	}
	return "", false
}

func loadFromEnv() (*App, error) {
	var cfg App
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.DB.Driver != DriverPostgres && cfg.DB.Driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DB.Driver)
	}

	logger := slog.Default()
	logger.Info("App config loaded",
		"env", cfg.Env,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"db_driver", cfg.DB.Driver,
		"db", maskValue(cfg.DB.Url),
		"auth_jwt_secret", maskValue(cfg.Auth.Jwt.Secret),
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"auth_max_attempts", cfg.Auth.MaxAttempts,
		"redis", maskValue(cfg.Redis.URL),
		"deposit_limit", cfg.Ledger.DepositLimit.StringFixed(2),
		"history_limit", cfg.Ledger.HistoryLimit,
		"export_path", cfg.Export.Path,
		"export_admin_token", maskValue(cfg.Export.AdminToken),
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
