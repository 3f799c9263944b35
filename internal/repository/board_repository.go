package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Board, error)
	// SlugExists checks slug uniqueness across active and deleted boards.
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindAll(ctx context.Context, includeInactive bool) ([]*domain.Board, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create inserts a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return conn(r.db).WithContext(ctx).Create(board).Error
}

// FindByID finds an active board by ID
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := conn(r.db).WithContext(ctx).
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindBySlug finds an active board by slug
func (r *boardRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Board, error) {
	var board domain.Board
	if err := conn(r.db).WithContext(ctx).
		Where("slug = ?", slug).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// SlugExists checks whether any board, deleted included, holds the slug.
// Deleted boards keep their slug reserved.
func (r *boardRepositoryImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var board domain.Board
	err := conn(r.db).WithContext(ctx).
		Unscoped().
		Where("slug = ?", slug).
		First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FindAll returns boards ordered by display order. Deleted boards are
// included only when includeInactive is set (admin listing).
func (r *boardRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]*domain.Board, error) {
	var boards []*domain.Board
	query := conn(r.db).WithContext(ctx)
	if includeInactive {
		query = query.Unscoped()
	}
	if err := query.
		Order("display_order ASC, created_at ASC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Count returns the number of active boards
func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(r.db).WithContext(ctx).
		Model(&domain.Board{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves a board row
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	return conn(r.db).WithContext(ctx).Save(board).Error
}

// Delete soft deletes a board
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(r.db).WithContext(ctx).Delete(&domain.Board{}, "id = ?", id).Error
}
