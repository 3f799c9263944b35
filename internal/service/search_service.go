package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"community-board-api/internal/dto"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
	"community-board-api/internal/util"
)

// maxSearchQueryLength caps search terms to keep LIKE scans bounded
const maxSearchQueryLength = 100

// SearchService defines the interface for post search
type SearchService interface {
	Search(ctx context.Context, query, searchType string, boardID *uuid.UUID, page, perPage int) (*dto.SearchResponse, error)
}

type searchServiceImpl struct {
	postRepo repository.PostRepository
	logger   *zap.Logger
}

// NewSearchService creates a new instance of SearchService
func NewSearchService(postRepo repository.PostRepository, logger *zap.Logger) SearchService {
	return &searchServiceImpl{postRepo: postRepo, logger: logger}
}

// Search runs a case-insensitive substring match over post titles and/or
// content, newest matches first.
func (s *searchServiceImpl) Search(ctx context.Context, query, searchType string, boardID *uuid.UUID, page, perPage int) (*dto.SearchResponse, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return nil, response.NewValidationError("Search query is required", "")
	}
	if len(term) > maxSearchQueryLength {
		return nil, response.NewValidationError("Search query is too long", "")
	}

	resolvedType := repository.SearchAll
	switch searchType {
	case "", string(repository.SearchAll):
	case string(repository.SearchTitle):
		resolvedType = repository.SearchTitle
	case string(repository.SearchContent):
		resolvedType = repository.SearchContent
	default:
		return nil, response.NewValidationError("Search type must be one of: title, content, all", "")
	}

	params := repository.SearchParams{
		Term:    term,
		Type:    resolvedType,
		BoardID: boardID,
	}

	total, err := s.postRepo.CountSearch(ctx, params)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Search failed", err.Error())
	}

	pagination := util.CalculatePagination(total, page, perPage)
	params.Offset = pagination.Offset()
	params.Limit = perPage

	posts, err := s.postRepo.Search(ctx, params)
	if err != nil {
		s.logger.Error("Post search failed", zap.String("query", term), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Search failed", err.Error())
	}

	return &dto.SearchResponse{
		Query:      term,
		SearchType: string(resolvedType),
		BoardID:    boardID,
		Posts:      toPostResponses(posts),
		Pagination: pagination,
	}, nil
}
