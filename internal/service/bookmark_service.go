package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
	"community-board-api/internal/util"
)

// BookmarkService defines the interface for bookmark business logic
type BookmarkService interface {
	ListBookmarks(ctx context.Context, userID uuid.UUID, page, perPage int) (*dto.BookmarkListResponse, error)
	AddBookmark(ctx context.Context, userID, postID uuid.UUID) (*dto.BookmarkResponse, error)
	RemoveBookmark(ctx context.Context, userID, postID uuid.UUID) error
	IsBookmarked(ctx context.Context, userID, postID uuid.UUID) (*dto.BookmarkStatusResponse, error)
}

type bookmarkServiceImpl struct {
	bookmarkRepo repository.BookmarkRepository
	postRepo     repository.PostRepository
	logger       *zap.Logger
}

// NewBookmarkService creates a new instance of BookmarkService
func NewBookmarkService(
	bookmarkRepo repository.BookmarkRepository,
	postRepo repository.PostRepository,
	logger *zap.Logger,
) BookmarkService {
	return &bookmarkServiceImpl{
		bookmarkRepo: bookmarkRepo,
		postRepo:     postRepo,
		logger:       logger,
	}
}

// ListBookmarks returns a page of the user's bookmarks, newest first.
// Bookmarks whose post was deleted after bookmarking are dropped from the
// page; the cleanup job removes the rows later.
func (s *bookmarkServiceImpl) ListBookmarks(ctx context.Context, userID uuid.UUID, page, perPage int) (*dto.BookmarkListResponse, error) {
	total, err := s.bookmarkRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list bookmarks", err.Error())
	}

	pagination := util.CalculatePagination(total, page, perPage)
	bookmarks, err := s.bookmarkRepo.FindByUser(ctx, userID, pagination.Offset(), perPage)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list bookmarks", err.Error())
	}

	postIDs := make([]uuid.UUID, len(bookmarks))
	for i, bookmark := range bookmarks {
		postIDs[i] = bookmark.PostID
	}
	posts, err := s.postRepo.FindByIDs(ctx, postIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list bookmarks", err.Error())
	}
	postsByID := make(map[uuid.UUID]*domain.Post, len(posts))
	for _, post := range posts {
		postsByID[post.ID] = post
	}

	responses := make([]*dto.BookmarkResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		post, ok := postsByID[bookmark.PostID]
		if !ok {
			continue
		}
		responses = append(responses, &dto.BookmarkResponse{
			BookmarkID: bookmark.ID,
			Post:       toPostResponse(post),
			CreatedAt:  bookmark.CreatedAt,
		})
	}

	return &dto.BookmarkListResponse{Bookmarks: responses, Pagination: pagination}, nil
}

// AddBookmark bookmarks a post for the user, once
func (s *bookmarkServiceImpl) AddBookmark(ctx context.Context, userID, postID uuid.UUID) (*dto.BookmarkResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add bookmark", err.Error())
	}

	existing, err := s.bookmarkRepo.FindByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add bookmark", err.Error())
	}
	if existing != nil {
		return nil, response.NewConflictError("Post is already bookmarked", "")
	}

	bookmark := &domain.Bookmark{
		UserID: userID,
		PostID: postID,
	}
	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		s.logger.Error("Failed to create bookmark",
			zap.String("user_id", userID.String()),
			zap.String("post_id", postID.String()),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add bookmark", err.Error())
	}

	return &dto.BookmarkResponse{
		BookmarkID: bookmark.ID,
		Post:       toPostResponse(post),
		CreatedAt:  bookmark.CreatedAt,
	}, nil
}

// RemoveBookmark deletes the user's bookmark on a post
func (s *bookmarkServiceImpl) RemoveBookmark(ctx context.Context, userID, postID uuid.UUID) error {
	existing, err := s.bookmarkRepo.FindByUserAndPost(ctx, userID, postID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove bookmark", err.Error())
	}
	if existing == nil {
		return response.NewNotFoundError("Bookmark not found", "")
	}

	if err := s.bookmarkRepo.Delete(ctx, userID, postID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove bookmark", err.Error())
	}
	return nil
}

// IsBookmarked reports whether the user has bookmarked the post
func (s *bookmarkServiceImpl) IsBookmarked(ctx context.Context, userID, postID uuid.UUID) (*dto.BookmarkStatusResponse, error) {
	existing, err := s.bookmarkRepo.FindByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check bookmark", err.Error())
	}
	return &dto.BookmarkStatusResponse{Bookmarked: existing != nil}, nil
}
