package database

import (
	"errors"
	"fmt"
	"time"

	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SchemaVersion is the schema revision this build expects.
// Bump it whenever a model gains or loses a column.
const SchemaVersion = 1

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SkipMigrate leaves the schema untouched and only verifies the recorded version
	SkipMigrate bool
}

// Models lists every table owned by the service in creation order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Team{},
		&models.Player{},
		&models.JoinRequest{},
		&models.Game{},
		&models.GameAttendance{},
		&models.PlayerGameStat{},
		&models.SchemaVersion{},
	}
}

// Initialize opens a Postgres connection, then either migrates the schema and records
// SchemaVersion, or refuses to start when the recorded version is older than SchemaVersion.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if opts.SkipMigrate {
		if err := VerifySchema(db); err != nil {
			return nil, err
		}
		return db, nil
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or alters all tables and records SchemaVersion
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	version := models.SchemaVersion{Version: SchemaVersion, AppliedAt: time.Now().UTC()}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&version).Error; err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

// CurrentVersion returns the highest recorded schema version
func CurrentVersion(db *gorm.DB) (int, error) {
	if !db.Migrator().HasTable(&models.SchemaVersion{}) {
		return 0, apperrors.ErrSchemaVersionNotFound
	}
	var latest models.SchemaVersion
	if err := db.Order("version DESC").First(&latest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrSchemaVersionNotFound
		}
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return latest.Version, nil
}

// VerifySchema fails when the database has not been migrated to at least SchemaVersion
func VerifySchema(db *gorm.DB) error {
	current, err := CurrentVersion(db)
	if err != nil && !apperrors.IsNotFound(err) {
		return err
	}
	if current < SchemaVersion {
		return fmt.Errorf("%w: have %d, need %d", apperrors.ErrSchemaOutdated, current, SchemaVersion)
	}
	return nil
}
