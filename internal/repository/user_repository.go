package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *domain.User) error
}

// userRepositoryImpl is the GORM implementation of UserRepository
type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create inserts a new user row
func (r *userRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	return conn(r.db).WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *userRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := conn(r.db).WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username. Returns (nil, nil) when absent.
func (r *userRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := conn(r.db).WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindAll returns users ordered by signup time, newest first
func (r *userRepositoryImpl) FindAll(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	var users []*domain.User
	if err := conn(r.db).WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the total number of users
func (r *userRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(r.db).WithContext(ctx).
		Model(&domain.User{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves a user row
func (r *userRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	return conn(r.db).WithContext(ctx).Save(user).Error
}
