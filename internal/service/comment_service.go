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

// CommentService defines the interface for comment business logic
type CommentService interface {
	// ListByPost returns the comment tree: top-level comments in posting
	// order, each carrying its replies.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*dto.CommentResponse, error)
	CreateComment(ctx context.Context, postID uuid.UUID, user *domain.User, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, commentID uuid.UUID, user *domain.User, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID, user *domain.User) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
		metrics:     m,
	}
}

// ListByPost assembles the two-level comment hierarchy for a post.
// 댓글은 최대 2단계: 댓글과 그에 대한 답글만 허용된다.
func (s *commentServiceImpl) ListByPost(ctx context.Context, postID uuid.UUID) ([]*dto.CommentResponse, error) {
	if _, err := s.loadPost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByPost(ctx, postID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list comments", err.Error())
	}

	byID := make(map[uuid.UUID]*dto.CommentResponse, len(comments))
	roots := []*dto.CommentResponse{}
	for _, comment := range comments {
		resp := toCommentResponse(comment)
		byID[comment.ID] = resp
		if comment.ParentID == nil {
			roots = append(roots, resp)
		}
	}
	// Replies arrive after their parent thanks to created_at ordering, but
	// an orphaned reply (parent hard-removed) is still surfaced at top level
	// rather than dropped.
	for _, comment := range comments {
		if comment.ParentID == nil {
			continue
		}
		parent, ok := byID[*comment.ParentID]
		if !ok {
			roots = append(roots, byID[comment.ID])
			continue
		}
		parent.Replies = append(parent.Replies, byID[comment.ID])
	}
	return roots, nil
}

// CreateComment adds a comment or reply to a post
func (s *commentServiceImpl) CreateComment(ctx context.Context, postID uuid.UUID, user *domain.User, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if user == nil {
		return nil, response.NewUnauthorizedError("Authentication required", "")
	}
	if _, err := s.loadPost(ctx, postID); err != nil {
		return nil, err
	}

	content := util.SanitizeText(req.Content)
	if content == "" {
		return nil, response.NewValidationError("Comment cannot be empty", "")
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Parent comment not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
		}
		if parent.PostID != postID {
			return nil, response.NewValidationError("Parent comment belongs to a different post", "")
		}
		if parent.IsReply() {
			return nil, response.NewConflictError("Replies to replies are not allowed", "")
		}
	}

	comment := &domain.Comment{
		PostID:   postID,
		UserID:   user.ID,
		ParentID: req.ParentID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		s.logger.Error("Failed to create comment",
			zap.String("post_id", postID.String()),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}
	comment.Author = user

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}
	return toCommentResponse(comment), nil
}

// UpdateComment edits a comment's content by the author or an admin
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID uuid.UUID, user *domain.User, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.loadComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnerOrAdmin(user, comment.UserID); err != nil {
		return nil, err
	}

	content := util.SanitizeText(req.Content)
	if content == "" {
		return nil, response.NewValidationError("Comment cannot be empty", "")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}
	return toCommentResponse(comment), nil
}

// DeleteComment soft deletes a comment by the author or an admin.
// Replies of a deleted top-level comment disappear with it from listings.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID uuid.UUID, user *domain.User) error {
	comment, err := s.loadComment(ctx, commentID)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(user, comment.UserID); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}
	return nil
}

func (s *commentServiceImpl) loadPost(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load post", err.Error())
	}
	return post, nil
}

func (s *commentServiceImpl) loadComment(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}
	return comment, nil
}
