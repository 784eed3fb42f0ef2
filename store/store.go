package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Common errors
var (
	ErrUnknownDriver = errors.New("unknown database driver")
	ErrNotFound      = errors.New("record not found")
)

// Store is the local relational mirror of one or more Thoth instances
type Store struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// Open connects to a sqlite or postgres database and migrates the schema
func Open(driver, dsn string, logger zerolog.Logger) (*Store, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	logger.Debug().Str("driver", driver).Msg("Database opened")
	return New(db, logger)
}

// New wraps an open gorm connection and migrates the schema
func New(db *gorm.DB, logger zerolog.Logger) (*Store, error) {
	if err := db.AutoMigrate(models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// DB returns the underlying connection
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// exportURL derives the export API of an instance from its GraphQL root
func exportURL(instance string) string {
	return strings.Replace(instance, "api", "export", 1)
}
