package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/config"
	"github.com/andersonmenezes2025/dia-a-dia-missao/internal/models"
)

var DB *gorm.DB

// Initialize sets up the database connection and runs migrations.
func Initialize() error {
	cfg := config.Load()

	db, err := Open(cfg.DatabasePath)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// Open connects to the SQLite database at the given path and migrates the
// schema. Tests pass ":memory:" for an isolated instance.
func Open(path string) (*gorm.DB, error) {
	if !strings.Contains(path, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Task{},
		&models.Child{},
		&models.TaskAssignee{},
		&models.MenstrualCycle{},
		&models.VoiceSettings{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
