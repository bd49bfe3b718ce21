// Package store persists users and posts through gorm. All ownership checks
// on posts happen inside the store as single owner-filtered queries, so a
// caller can never observe the difference between "does not exist" and
// "exists but owned by someone else".
package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/averyk/miniblog/models"
)

// Store wraps a gorm database handle.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres and migrates the schema. A connection failure is
// returned immediately so the caller can abort startup.
func Open(databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return New(db)
}

// New builds a Store on an already-open gorm handle and migrates the schema.
// Tests use this with an in-memory sqlite database.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
