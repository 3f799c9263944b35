package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/metrics"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
	"community-board-api/internal/util"
)

// maxPostContentBytes caps rendered post bodies at 1 MiB
const maxPostContentBytes = 1 << 20

// PostService defines the interface for post business logic
type PostService interface {
	ListByBoard(ctx context.Context, boardIdentifier string, user *domain.User, page, perPage int) (*dto.PostListResponse, error)
	// GetPost loads a post and bumps its view counter.
	GetPost(ctx context.Context, postID uuid.UUID, user *domain.User) (*dto.PostDetailResponse, error)
	CreatePost(ctx context.Context, boardIdentifier string, user *domain.User, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, user *domain.User, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, postID uuid.UUID, user *domain.User) error
	// TogglePin flips the pinned flag (admin only).
	TogglePin(ctx context.Context, postID uuid.UUID, user *domain.User) (*dto.PostResponse, error)
}

type postServiceImpl struct {
	postRepo  repository.PostRepository
	boardRepo repository.BoardRepository
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewPostService creates a new instance of PostService
func NewPostService(
	postRepo repository.PostRepository,
	boardRepo repository.BoardRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		boardRepo: boardRepo,
		logger:    logger,
		metrics:   m,
	}
}

// ListByBoard returns a page of posts on a board, pinned posts first
func (s *postServiceImpl) ListByBoard(ctx context.Context, boardIdentifier string, user *domain.User, page, perPage int) (*dto.PostListResponse, error) {
	board, err := findBoardByIdentifier(ctx, s.boardRepo, boardIdentifier)
	if err != nil {
		return nil, err
	}
	if !board.CanReadBy(user) {
		return nil, boardReadDenied(user)
	}

	total, err := s.postRepo.CountByBoard(ctx, board.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list posts", err.Error())
	}

	pagination := util.CalculatePagination(total, page, perPage)
	posts, err := s.postRepo.FindByBoard(ctx, board.ID, pagination.Offset(), perPage)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list posts", err.Error())
	}

	return &dto.PostListResponse{
		Board:      toBoardResponse(board),
		Posts:      toPostResponses(posts),
		Pagination: pagination,
	}, nil
}

// GetPost returns a single post with its board and increments the view count.
// The increment is fire-and-forget; a failed bump never blocks the read.
func (s *postServiceImpl) GetPost(ctx context.Context, postID uuid.UUID, user *domain.User) (*dto.PostDetailResponse, error) {
	post, board, err := s.loadPostWithBoard(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !board.CanReadBy(user) {
		return nil, boardReadDenied(user)
	}

	if err := s.postRepo.IncrementViewCount(ctx, post.ID); err != nil {
		s.logger.Warn("Failed to increment view count",
			zap.String("post_id", post.ID.String()),
			zap.Error(err),
		)
	} else {
		post.ViewCount++
	}

	return &dto.PostDetailResponse{
		PostResponse: *toPostResponse(post),
		Board:        toBoardResponse(board),
	}, nil
}

// CreatePost creates a post on a board after the write-policy check
func (s *postServiceImpl) CreatePost(ctx context.Context, boardIdentifier string, user *domain.User, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	board, err := findBoardByIdentifier(ctx, s.boardRepo, boardIdentifier)
	if err != nil {
		return nil, err
	}
	if !board.CanWriteBy(user) {
		return nil, boardWriteDenied(user)
	}

	title := util.SanitizeText(req.Title)
	if title == "" {
		return nil, response.NewValidationError("Title cannot be empty", "")
	}
	content := util.SanitizeHTML(req.Content)
	if len(content) > maxPostContentBytes {
		return nil, response.NewValidationError("Content is too large", "")
	}

	post := &domain.Post{
		BoardID: board.ID,
		UserID:  user.ID,
		Title:   title,
		Content: content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		s.logger.Error("Failed to create post",
			zap.String("board_id", board.ID.String()),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create post", err.Error())
	}
	post.Author = user

	if s.metrics != nil {
		s.metrics.IncrementPostCreated()
	}
	s.logger.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("board_id", board.ID.String()),
		zap.String("user_id", user.ID.String()),
	)
	return toPostResponse(post), nil
}

// UpdatePost applies a partial update by the author or an admin
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID uuid.UUID, user *domain.User, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnerOrAdmin(user, post.UserID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := util.SanitizeText(*req.Title)
		if title == "" {
			return nil, response.NewValidationError("Title cannot be empty", "")
		}
		post.Title = title
	}
	if req.Content != nil {
		content := util.SanitizeHTML(*req.Content)
		if len(content) > maxPostContentBytes {
			return nil, response.NewValidationError("Content is too large", "")
		}
		post.Content = content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update post", err.Error())
	}
	return toPostResponse(post), nil
}

// DeletePost soft deletes a post by the author or an admin
func (s *postServiceImpl) DeletePost(ctx context.Context, postID uuid.UUID, user *domain.User) error {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(user, post.UserID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete post", err.Error())
	}

	s.logger.Info("Post deleted",
		zap.String("post_id", post.ID.String()),
		zap.String("user_id", user.ID.String()),
	)
	return nil
}

// TogglePin flips the pinned flag. Pinned posts float to the top of the
// board listing.
func (s *postServiceImpl) TogglePin(ctx context.Context, postID uuid.UUID, user *domain.User) (*dto.PostResponse, error) {
	if user == nil {
		return nil, response.NewUnauthorizedError("Authentication required", "")
	}
	if !user.IsAdmin {
		return nil, response.NewForbiddenError("Admin privileges required", "")
	}

	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.IsPinned = !post.IsPinned
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update post", err.Error())
	}
	return toPostResponse(post), nil
}

func (s *postServiceImpl) loadPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}
	return post, nil
}

func (s *postServiceImpl) loadPostWithBoard(ctx context.Context, postID uuid.UUID) (*domain.Post, *domain.Board, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	board, err := s.boardRepo.FindByID(ctx, post.BoardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewNotFoundError("Post not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}
	return post, board, nil
}

// requireOwnerOrAdmin gates mutations to the resource owner or an admin
func requireOwnerOrAdmin(user *domain.User, ownerID uuid.UUID) error {
	if user == nil {
		return response.NewUnauthorizedError("Authentication required", "")
	}
	if user.ID != ownerID && !user.IsAdmin {
		return response.NewForbiddenError("You do not have permission to modify this resource", "")
	}
	return nil
}
