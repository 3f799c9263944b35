package dto

import (
	"time"

	"github.com/google/uuid"

	"community-board-api/internal/util"
)

// CreatePostRequest represents the request to create a post
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"omitempty"`
}

// UpdatePostRequest represents the request to update a post
type UpdatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content *string `json:"content" binding:"omitempty"`
}

// PostResponse represents the post response
type PostResponse struct {
	PostID       uuid.UUID       `json:"postId"`
	BoardID      uuid.UUID       `json:"boardId"`
	Title        string          `json:"title"`
	Content      string          `json:"content,omitempty"`
	ViewCount    int64           `json:"viewCount"`
	IsPinned     bool            `json:"isPinned"`
	IsBookmarked bool            `json:"isBookmarked,omitempty"`
	Author       *AuthorResponse `json:"author,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// PostDetailResponse is a post with its board attached
type PostDetailResponse struct {
	PostResponse
	Board *BoardResponse `json:"board,omitempty"`
}

// PostListResponse is the paginated board post listing
type PostListResponse struct {
	Board *BoardResponse  `json:"board"`
	Posts []*PostResponse `json:"posts"`
	util.Pagination
}
