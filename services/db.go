package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tadeyemo32/persona-backend/models"
)

// OpenDB opens (or creates) the SQLite database and migrates the history
// schema. The path comes from DATABASE_PATH, defaulting to data/persona.db.
func OpenDB() (*gorm.DB, error) {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		if err := os.MkdirAll("data", os.ModePerm); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dbPath = filepath.Join("data", "persona.db")
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.SearchHistoryEntry{},
		&models.SearchIndexEntry{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("SQLite database ready")
	return db, nil
}
