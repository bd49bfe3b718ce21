package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/averyk/miniblog/internal/common"
	"github.com/averyk/miniblog/models"
)

// CreateUser inserts a new user. The username is trimmed first; an empty
// result is ErrValidation and a duplicate is ErrUsernameTaken. Uniqueness is
// case-sensitive and ultimately enforced by the unique index, so two
// concurrent signups with the same name cannot both succeed.
func (s *Store) CreateUser(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username required", common.ErrValidation)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: username,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UserByUsername looks up a user by exact trimmed username. Absence is
// ErrUserNotFound.
func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
