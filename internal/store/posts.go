package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/averyk/miniblog/internal/common"
	"github.com/averyk/miniblog/models"
)

// CreatePost validates and inserts a post. Title and content are trimmed and
// must be non-empty; the image payload and extension must be both set or both
// empty. OwnerID and OwnerUsername are expected to come from the session
// identity of the caller.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	title, content, err := validatePostFields(post.Title, post.Content)
	if err != nil {
		return err
	}
	if (post.Image == nil) != (post.ImageExt == "") {
		return fmt.Errorf("%w: image and extension must be set together", common.ErrValidation)
	}

	post.Title = title
	post.Content = content
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// AllPostsNewestFirst returns every post ordered by creation time descending.
func (s *Store) AllPostsNewestFirst(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// OwnedPost fetches a post by id, filtered by owner, in one query. A missing
// post and a post owned by another user both come back as ErrNotFound.
func (s *Store) OwnedPost(ctx context.Context, postID, ownerID string) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Where("id = ? AND owner_id = ?", postID, ownerID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

// UpdateOwnedPost edits title, content, and optionally the image of a post
// the given user owns, as a single owner-filtered UPDATE. A nil image keeps
// the stored one. Zero rows affected is ErrNotFound.
func (s *Store) UpdateOwnedPost(ctx context.Context, postID, ownerID, title, content string, image []byte, imageExt string) error {
	title, content, err := validatePostFields(title, content)
	if err != nil {
		return err
	}
	if (image == nil) != (imageExt == "") {
		return fmt.Errorf("%w: image and extension must be set together", common.ErrValidation)
	}

	now := time.Now().UTC()
	updates := map[string]any{
		"title":      title,
		"content":    content,
		"updated_at": &now,
	}
	if image != nil {
		updates["image"] = image
		updates["image_ext"] = imageExt
	}

	res := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ? AND owner_id = ?", postID, ownerID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteOwnedPost removes a post the given user owns, as a single
// owner-filtered DELETE. Nothing is mutated when the filter matches no row.
func (s *Store) DeleteOwnedPost(ctx context.Context, postID, ownerID string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND owner_id = ?", postID, ownerID).Delete(&models.Post{})
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func validatePostFields(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", fmt.Errorf("%w: title and content are required", common.ErrValidation)
	}
	return title, content, nil
}
