package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the request to create a comment.
// parentId makes the comment a reply; replies to replies are rejected.
type CreateCommentRequest struct {
	Content  string     `json:"content" binding:"required,min=1,max=10000"`
	ParentID *uuid.UUID `json:"parentId" binding:"omitempty"`
}

// UpdateCommentRequest represents the request to update a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=10000"`
}

// CommentResponse represents a comment with its direct replies
type CommentResponse struct {
	CommentID uuid.UUID          `json:"commentId"`
	PostID    uuid.UUID          `json:"postId"`
	ParentID  *uuid.UUID         `json:"parentId,omitempty"`
	Content   string             `json:"content"`
	Author    *AuthorResponse    `json:"author,omitempty"`
	Replies   []*CommentResponse `json:"replies"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
