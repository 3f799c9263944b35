package dto

import (
	"time"

	"github.com/google/uuid"

	"community-board-api/internal/util"
)

// BookmarkResponse represents a bookmark with its post attached.
// Bookmarks whose post has been deleted are filtered out of listings.
type BookmarkResponse struct {
	BookmarkID uuid.UUID     `json:"bookmarkId"`
	Post       *PostResponse `json:"post"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// BookmarkListResponse is the paginated bookmark listing
type BookmarkListResponse struct {
	Bookmarks []*BookmarkResponse `json:"bookmarks"`
	util.Pagination
}

// BookmarkStatusResponse reports whether a post is bookmarked
type BookmarkStatusResponse struct {
	Bookmarked bool `json:"bookmarked"`
}
