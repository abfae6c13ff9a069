package database

import (
	stderrors "errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config returns the gorm configuration shared by production and tests.
// TranslateError lets drivers report unique violations as gorm.ErrDuplicatedKey.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
}

// Migrate creates or updates the application schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &LocationModel{})
}

func isUniqueViolation(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
