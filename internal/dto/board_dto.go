package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBoardRequest represents the request to create a board (admin only)
type CreateBoardRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	Slug         string `json:"slug" binding:"required,min=1,max=255"`
	Description  string `json:"description" binding:"omitempty,max=1000"`
	Icon         string `json:"icon" binding:"omitempty,max=255"`
	CanRead      string `json:"canRead" binding:"omitempty,oneof=all member admin"`
	CanWrite     string `json:"canWrite" binding:"omitempty,oneof=all member admin"`
	DisplayOrder int    `json:"displayOrder" binding:"omitempty,gte=0"`
}

// UpdateBoardRequest represents the request to update a board (admin only).
// The slug is immutable and deliberately absent.
type UpdateBoardRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=1000"`
	Icon         *string `json:"icon" binding:"omitempty,max=255"`
	CanRead      *string `json:"canRead" binding:"omitempty,oneof=all member admin"`
	CanWrite     *string `json:"canWrite" binding:"omitempty,oneof=all member admin"`
	DisplayOrder *int    `json:"displayOrder" binding:"omitempty,gte=0"`
}

// BoardResponse represents the board response
type BoardResponse struct {
	BoardID      uuid.UUID `json:"boardId"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	CanRead      string    `json:"canRead"`
	CanWrite     string    `json:"canWrite"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
