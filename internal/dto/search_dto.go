package dto

import (
	"github.com/google/uuid"

	"community-board-api/internal/util"
)

// SearchResponse is the paginated search result
type SearchResponse struct {
	Query      string          `json:"query"`
	SearchType string          `json:"searchType"`
	BoardID    *uuid.UUID      `json:"boardId,omitempty"`
	Posts      []*PostResponse `json:"posts"`
	util.Pagination
}
