package infra

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/amirasaad/banking/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlitePragmas are added to a SQLite DSN unless it sets them already.
// Foreign keys are off by default in SQLite; ledger rows must not outlive
// their account.
var sqlitePragmas = [][2]string{
	{"_foreign_keys", "on"},
	{"_busy_timeout", "5000"},
}

// NewDBConnection opens the configured database. appEnv selects the gorm
// log level: SQL is only echoed in development.
func NewDBConnection(cnf config.DB, appEnv string) (*gorm.DB, error) {
	if cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	var dialector gorm.Dialector
	switch cnf.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cnf.Url))
	default:
		dialector = postgres.Open(cnf.Url)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cnf.Driver == config.DriverSQLite {
		// one writer at a time
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// sqliteDSN appends the missing sqlitePragmas to dsn.
func sqliteDSN(dsn string) string {
	path, query, _ := strings.Cut(dsn, "?")
	params, err := url.ParseQuery(query)
	if err != nil {
		return dsn
	}
	for _, p := range sqlitePragmas {
		if params.Get(p[0]) == "" {
			params.Set(p[0], p[1])
		}
	}
	return path + "?" + params.Encode()
}
