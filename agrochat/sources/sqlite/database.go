package sqlite

import (
	"agrochat/agrochat/config"
	"agrochat/agrochat/sources/sqlite/models"
	"context"
	"fmt"
	"os"
	"path/filepath"

	sqlitedrv "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlitedrv.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate models (automatic schema creation)
	err = db.WithContext(ctx).
		AutoMigrate(
			&models.ChatSession{},
			&models.ChatMessage{},
		)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	return &Database{DB: db}, nil
}

func (db *Database) Close() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
