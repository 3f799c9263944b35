package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/dto"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
	"community-board-api/internal/util"
)

// UserService defines the interface for profile and user administration
type UserService interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, page, perPage int) (*dto.UserListResponse, error)
	UpdateRole(ctx context.Context, actorID, targetID uuid.UUID, isAdmin bool) (*dto.UserResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

// GetUser returns a single profile
func (s *userServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}
	return toUserResponse(user), nil
}

// UpdateProfile changes the caller's username
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	username := util.SanitizeText(req.Username)
	if !usernamePattern.MatchString(username) {
		return nil, response.NewValidationError("Username may only contain letters, numbers and underscores", "")
	}

	if username != user.Username {
		existing, err := s.userRepo.FindByUsername(ctx, username)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update profile", err.Error())
		}
		if existing != nil {
			return nil, response.NewConflictError("Username is already taken", "")
		}
	}

	user.Username = username
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update profile",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update profile", err.Error())
	}

	return toUserResponse(user), nil
}

// ListUsers returns all profiles for administrators, newest first
func (s *userServiceImpl) ListUsers(ctx context.Context, page, perPage int) (*dto.UserListResponse, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list users", err.Error())
	}

	pagination := util.CalculatePagination(total, page, perPage)
	users, err := s.userRepo.FindAll(ctx, pagination.Offset(), perPage)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list users", err.Error())
	}

	responses := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = toUserResponse(user)
	}
	return &dto.UserListResponse{Users: responses, Pagination: pagination}, nil
}

// UpdateRole grants or revokes admin. Admins cannot change their own role,
// which keeps at least the acting admin in place.
func (s *userServiceImpl) UpdateRole(ctx context.Context, actorID, targetID uuid.UUID, isAdmin bool) (*dto.UserResponse, error) {
	if actorID == targetID {
		return nil, response.NewValidationError("Cannot change your own role", "")
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	user.IsAdmin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update role", err.Error())
	}

	s.logger.Info("User role updated",
		zap.String("actor_id", actorID.String()),
		zap.String("target_id", targetID.String()),
		zap.Bool("is_admin", isAdmin),
	)
	return toUserResponse(user), nil
}
