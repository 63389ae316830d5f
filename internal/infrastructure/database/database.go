package database

import (
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/glebarez/sqlite"
	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

//go:embed migrations
var migrationsFS embed.FS

// NewDB opens the configured database (SQLite or PostgreSQL) using GORM
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case config.DatabaseDriverSQLite:
		dialector = sqlite.Open(cfg.GetDatabaseDSN())
	case config.DatabaseDriverPostgres:
		dialector = postgres.Open(cfg.GetDatabaseDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger(cfg.Environment),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	if cfg.Database.Driver == config.DatabaseDriverSQLite {
		// SQLite serializes writers; a single connection avoids SQLITE_BUSY on concurrent inserts
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// Postgres may still be starting when the service boots
	ping := func() error { return sqlDB.Ping() }
	if err := backoff.Retry(ping, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✅ Database connected successfully (%s)", cfg.Database.Driver)

	return db, nil
}

func gormLogger(environment string) logger.Interface {
	switch environment {
	case "production":
		return logger.Default.LogMode(logger.Error)
	case "test":
		return logger.Default.LogMode(logger.Silent)
	default:
		return logger.Default.LogMode(logger.Warn)
	}
}

// Dialect returns the sql-migrate dialect name for a driver
func Dialect(driver string) string {
	if driver == config.DatabaseDriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}

// Migrate applies the embedded migrations for the given driver in the given direction
func Migrate(db *gorm.DB, driver string, direction migrate.MigrationDirection) (int, error) {
	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations/" + driver,
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %v", err)
	}

	n, err := migrate.Exec(sqlDB, Dialect(driver), migrations, direction)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migration, error: %v", err)
	}
	return n, nil
}

// AutoMigrate applies all pending up migrations
func AutoMigrate(db *gorm.DB, driver string) error {
	log.Printf("🔄 Applying %s migrations using sql-migrate...", driver)

	n, err := Migrate(db, driver, migrate.Up)
	if err != nil {
		return err
	}

	log.Printf("✅ Applied %d migrations!", n)
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Database connection closed")
	return nil
}
