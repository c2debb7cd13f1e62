package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-questions/internal/config"
)

// Open подключается к хранилищу, выбранному в конфигурации, и готовит схему
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		db, err := NewSQLiteDB(cfg.SQLitePath, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		if err := SeedCategories(db); err != nil {
			return nil, err
		}
		return db, nil
	case "postgres":
		db, err := NewPostgresDB(cfg.PostgresConnectionString(), cfg.LogLevel, PoolConfig{
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
		})
		if err != nil {
			return nil, err
		}
		if err := MigrateDB(db, cfg.MigrationsPath); err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// Ping проверяет, что хранилище отвечает
func Ping(db *gorm.DB) error {
	sqlDB, err := GetSQLDB(db)
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close закрывает пул соединений
func Close(db *gorm.DB) error {
	sqlDB, err := GetSQLDB(db)
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newGormLogger сопоставляет уровень из конфига уровню логгера GORM
func newGormLogger(level string) logger.Interface {
	switch level {
	case "silent":
		return logger.Default.LogMode(logger.Silent)
	case "error":
		return logger.Default.LogMode(logger.Error)
	case "info":
		return logger.Default.LogMode(logger.Info)
	default:
		return logger.Default.LogMode(logger.Warn)
	}
}
