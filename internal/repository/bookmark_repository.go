package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// BookmarkRepository defines the interface for bookmark data access
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *domain.Bookmark) error
	FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*domain.Bookmark, error)
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Bookmark, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
	// DeleteOrphaned removes bookmarks whose post has been soft-deleted.
	// Returns the number of rows swept.
	DeleteOrphaned(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// bookmarkRepositoryImpl is the GORM implementation of BookmarkRepository
type bookmarkRepositoryImpl struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new instance of BookmarkRepository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepositoryImpl{db: db}
}

// Create inserts a new bookmark. The unique (user_id, post_id) index is the
// final arbiter of the at-most-one invariant.
func (r *bookmarkRepositoryImpl) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	return conn(r.db).WithContext(ctx).Create(bookmark).Error
}

// FindByUserAndPost finds a bookmark for a (user, post) pair.
// Returns (nil, nil) when absent.
func (r *bookmarkRepositoryImpl) FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*domain.Bookmark, error) {
	var bookmark domain.Bookmark
	err := conn(r.db).WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmark, nil
}

// FindByUser returns a user's bookmarks, newest first
func (r *bookmarkRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Bookmark, error) {
	var bookmarks []*domain.Bookmark
	if err := conn(r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// CountByUser counts a user's bookmarks
func (r *bookmarkRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := conn(r.db).WithContext(ctx).
		Model(&domain.Bookmark{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a bookmark physically
func (r *bookmarkRepositoryImpl) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	return conn(r.db).WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&domain.Bookmark{}).Error
}

// DeleteOrphaned sweeps bookmarks pointing at soft-deleted posts. Reads
// already filter these out; the sweep just keeps the table from growing.
func (r *bookmarkRepositoryImpl) DeleteOrphaned(ctx context.Context) (int64, error) {
	result := conn(r.db).WithContext(ctx).
		Where("post_id IN (?)", conn(r.db).
			Model(&domain.Post{}).
			Unscoped().
			Select("id").
			Where("deleted_at IS NOT NULL")).
		Delete(&domain.Bookmark{})
	return result.RowsAffected, result.Error
}

// Count returns the total number of bookmarks
func (r *bookmarkRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(r.db).WithContext(ctx).
		Model(&domain.Bookmark{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
