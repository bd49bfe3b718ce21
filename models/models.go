package models

import (
	"time"
)

// User is an account identified by username alone. Users are created at signup
// and never mutated or deleted afterwards.
type User struct {
	ID        string `gorm:"type:uuid;primarykey"`
	Username  string `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time
}

// Post is a short text entry with an optional inline image. Image and ImageExt
// are either both set or both empty. OwnerID and OwnerUsername are fixed at
// creation time; usernames are immutable so the denormalized copy never drifts.
type Post struct {
	ID            string `gorm:"type:uuid;primarykey"`
	OwnerID       string `gorm:"type:uuid;not null;index"`
	OwnerUsername string `gorm:"size:255;not null"`
	Title         string `gorm:"not null"`
	Content       string `gorm:"not null"`
	Image         []byte
	ImageExt      string `gorm:"size:8"`
	CreatedAt     time.Time
	// UpdatedAt stays nil until the post is first edited.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}
