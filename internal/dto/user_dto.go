package dto

import (
	"time"

	"github.com/google/uuid"

	"community-board-api/internal/util"
)

// AuthorResponse is the embedded author summary on posts and comments
type AuthorResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
}

// UserResponse represents a full user profile
type UserResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateProfileRequest represents a username change
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
}

// UpdateRoleRequest toggles a user's admin flag (admin only)
type UpdateRoleRequest struct {
	IsAdmin *bool `json:"isAdmin" binding:"required"`
}

// UserListResponse is the paginated admin user listing
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	util.Pagination
}
