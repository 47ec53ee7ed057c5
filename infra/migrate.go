package infra

import (
	"errors"
	"fmt"

	infrarepo "github.com/amirasaad/banking/infra/repository"
	"github.com/amirasaad/banking/internal/migrations"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date for the given driver.
func Migrate(db *gorm.DB, driver string) error {
	if driver == config.DriverSQLite {
		return migrateSQLite(db)
	}
	return migratePostgres(db)
}

func migratePostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func migrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&infrarepo.Customer{},
		&infrarepo.Account{},
		&infrarepo.Transaction{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	// account numbers start at account.OpeningNumber
	return db.Exec(
		"INSERT INTO sqlite_sequence (name, seq) SELECT 'accounts', ? "+
			"WHERE NOT EXISTS (SELECT 1 FROM sqlite_sequence WHERE name = 'accounts')",
		account.OpeningNumber-1,
	).Error
}
