package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// SearchType selects which columns a post search matches against
type SearchType string

const (
	SearchTitle   SearchType = "title"
	SearchContent SearchType = "content"
	SearchAll     SearchType = "all"
)

// SearchParams describes a post search query
type SearchParams struct {
	Term    string
	Type    SearchType
	BoardID *uuid.UUID
	Offset  int
	Limit   int
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID, offset, limit int) ([]*domain.Post, error)
	CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementViewCount bumps the view counter atomically in the store.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, params SearchParams) ([]*domain.Post, error)
	CountSearch(ctx context.Context, params SearchParams) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// postRepositoryImpl is the GORM implementation of PostRepository
type postRepositoryImpl struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepositoryImpl{db: db}
}

// Create inserts a new post
func (r *postRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	return conn(r.db).WithContext(ctx).Create(post).Error
}

// FindByID finds an active post by ID with its author preloaded
func (r *postRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	if err := conn(r.db).WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByBoard returns active posts on a board, pinned first then newest first
func (r *postRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID, offset, limit int) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := conn(r.db).WithContext(ctx).
		Preload("Author").
		Where("board_id = ?", boardID).
		Order("is_pinned DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByBoard counts active posts on a board
func (r *postRepositoryImpl) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	var count int64
	if err := conn(r.db).WithContext(ctx).
		Model(&domain.Post{}).
		Where("board_id = ?", boardID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByIDs returns the active posts among the given IDs with authors preloaded
func (r *postRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Post, error) {
	if len(ids) == 0 {
		return []*domain.Post{}, nil
	}
	var posts []*domain.Post
	if err := conn(r.db).WithContext(ctx).
		Preload("Author").
		Where("id IN ?", ids).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update saves a post row
func (r *postRepositoryImpl) Update(ctx context.Context, post *domain.Post) error {
	return conn(r.db).WithContext(ctx).Save(post).Error
}

// Delete soft deletes a post
func (r *postRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(r.db).WithContext(ctx).Delete(&domain.Post{}, "id = ?", id).Error
}

// IncrementViewCount bumps the counter with a single UPDATE so concurrent
// reads never lose increments.
func (r *postRepositoryImpl) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return conn(r.db).WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// Search runs a case-insensitive match over title and/or content
func (r *postRepositoryImpl) Search(ctx context.Context, params SearchParams) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := r.searchQuery(ctx, params).
		Preload("Author").
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CountSearch counts the posts a search would match
func (r *postRepositoryImpl) CountSearch(ctx context.Context, params SearchParams) (int64, error) {
	var count int64
	if err := r.searchQuery(ctx, params).
		Model(&domain.Post{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns the total number of active posts
func (r *postRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(r.db).WithContext(ctx).
		Model(&domain.Post{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postRepositoryImpl) searchQuery(ctx context.Context, params SearchParams) *gorm.DB {
	pattern := "%" + strings.ToLower(params.Term) + "%"
	query := conn(r.db).WithContext(ctx).Model(&domain.Post{})

	switch params.Type {
	case SearchTitle:
		query = query.Where("LOWER(title) LIKE ?", pattern)
	case SearchContent:
		query = query.Where("LOWER(content) LIKE ?", pattern)
	default:
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	if params.BoardID != nil {
		query = query.Where("board_id = ?", *params.BoardID)
	}
	return query
}
