package initializer

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/banking/infra"
	"github.com/amirasaad/banking/infra/attempts"
	infra_repository "github.com/amirasaad/banking/infra/repository"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	return InitializeWithLogger(cfg, SetupLogger(os.Stdout, cfg.Log))
}

// InitializeWithLogger is InitializeDependencies with a caller-supplied logger.
func InitializeWithLogger(cfg *config.App, logger *slog.Logger) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{Logger: logger}

	// Initialize database
	db, err := openDB(*cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	deps.Closers = append(deps.Closers, dbCloser{db})
	opened := deps
	defer func() {
		if err != nil {
			releaseAll(opened.Closers, logger)
		}
	}()

	if cfg.DB.Migrate {
		if err = infra.Migrate(db, cfg.DB.Driver); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("Database schema up to date", "driver", cfg.DB.Driver)
	}

	// Initialize unit of work
	deps.Uow = infra_repository.NewUoW(db)

	// Initialize login attempt store
	if cfg.Redis != nil && cfg.Redis.URL != "" {
		var store *attempts.RedisStore
		store, err = newRedisAttempts(cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		deps.Attempts = store
		deps.Closers = append(deps.Closers, store)
		logger.Info("Login attempts tracked in Redis")
	} else {
		deps.Attempts = attempts.NewMemoryStore()
		logger.Info("Login attempts tracked in memory")
	}

	return deps, nil
}

// openDB is replaced in tests.
var openDB = infra.NewDBConnection

// releaseAll closes what was opened before a failed start, newest first.
func releaseAll(closers []io.Closer, logger *slog.Logger) {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			logger.Warn("Failed to release resource", "error", err)
		}
	}
}

func newRedisAttempts(cfg *config.Redis, logger *slog.Logger) (*attempts.RedisStore, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opt.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opt.WriteTimeout = cfg.WriteTimeout
	}
	store, err := attempts.NewRedisStoreWithOptions(opt, cfg.KeyPrefix, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis attempt store: %w", err)
	}
	return store, nil
}

type dbCloser struct{ db *gorm.DB }

func (c dbCloser) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ io.Closer = dbCloser{}
