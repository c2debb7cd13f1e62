package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// DefaultCategories категории, которые заводит seed-миграция
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// NewSQLiteDB открывает SQLite (файл или in-memory DSN) и создает таблицы через AutoMigrate.
// SQLite не любит конкурентную запись, поэтому пул ограничен одним соединением.
func NewSQLiteDB(dsn string, logLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newGormLogger(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.Category{}, &entity.Question{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	return db, nil
}

// SeedCategories добавляет категории по умолчанию, если таблица пуста
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]entity.Category, len(DefaultCategories))
	for i, name := range DefaultCategories {
		categories[i] = entity.Category{Type: name}
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}
