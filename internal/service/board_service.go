package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
	"community-board-api/internal/util"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// BoardService defines the interface for board business logic
type BoardService interface {
	// ListBoards returns boards the user may see. Inactive boards show up
	// only for admins.
	ListBoards(ctx context.Context, user *domain.User) ([]*dto.BoardResponse, error)
	// GetBoard resolves a board by UUID or slug.
	GetBoard(ctx context.Context, identifier string, user *domain.User) (*dto.BoardResponse, error)
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, boardID uuid.UUID) error
}

type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	postRepo  repository.PostRepository
	logger    *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(boardRepo repository.BoardRepository, postRepo repository.PostRepository, logger *zap.Logger) BoardService {
	return &boardServiceImpl{
		boardRepo: boardRepo,
		postRepo:  postRepo,
		logger:    logger,
	}
}

// findBoardByIdentifier looks a board up by UUID first, slug second.
// 게시판은 UUID 또는 슬러그로 조회할 수 있다.
func findBoardByIdentifier(ctx context.Context, boardRepo repository.BoardRepository, identifier string) (*domain.Board, error) {
	var (
		board *domain.Board
		err   error
	)
	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		board, err = boardRepo.FindByID(ctx, id)
	} else {
		board, err = boardRepo.FindBySlug(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	return board, nil
}

// ListBoards returns boards visible to the user, hiding boards whose read
// policy excludes them.
func (s *boardServiceImpl) ListBoards(ctx context.Context, user *domain.User) ([]*dto.BoardResponse, error) {
	includeInactive := user != nil && user.IsAdmin
	boards, err := s.boardRepo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list boards", err.Error())
	}

	responses := make([]*dto.BoardResponse, 0, len(boards))
	for _, board := range boards {
		if !board.CanReadBy(user) {
			continue
		}
		responses = append(responses, toBoardResponse(board))
	}
	return responses, nil
}

// GetBoard resolves a single board and enforces its read policy
func (s *boardServiceImpl) GetBoard(ctx context.Context, identifier string, user *domain.User) (*dto.BoardResponse, error) {
	board, err := findBoardByIdentifier(ctx, s.boardRepo, identifier)
	if err != nil {
		return nil, err
	}
	if !board.CanReadBy(user) {
		return nil, boardReadDenied(user)
	}
	return toBoardResponse(board), nil
}

// CreateBoard creates a board. Slugs are lowercase kebab-case and stay
// reserved even after the board is deleted.
func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if !slugPattern.MatchString(req.Slug) {
		return nil, response.NewValidationError("Slug may only contain lowercase letters, numbers and hyphens", "")
	}

	exists, err := s.boardRepo.SlugExists(ctx, req.Slug)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}
	if exists {
		return nil, response.NewConflictError("Board slug is already in use", "")
	}

	board := &domain.Board{
		Slug:         req.Slug,
		Name:         util.SanitizeText(req.Name),
		Description:  util.SanitizeText(req.Description),
		Icon:         util.SanitizeText(req.Icon),
		CanRead:      domain.AccessAll,
		CanWrite:     domain.AccessMember,
		DisplayOrder: req.DisplayOrder,
	}
	if req.CanRead != "" {
		board.CanRead = domain.AccessPolicy(req.CanRead)
	}
	if req.CanWrite != "" {
		board.CanWrite = domain.AccessPolicy(req.CanWrite)
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		s.logger.Error("Failed to create board", zap.String("slug", req.Slug), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("slug", board.Slug),
	)
	return toBoardResponse(board), nil
}

// UpdateBoard applies a partial update. The slug never changes.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	if req.Name != nil {
		board.Name = util.SanitizeText(*req.Name)
	}
	if req.Description != nil {
		board.Description = util.SanitizeText(*req.Description)
	}
	if req.Icon != nil {
		board.Icon = util.SanitizeText(*req.Icon)
	}
	if req.CanRead != nil {
		board.CanRead = domain.AccessPolicy(*req.CanRead)
	}
	if req.CanWrite != nil {
		board.CanWrite = domain.AccessPolicy(*req.CanWrite)
	}
	if req.DisplayOrder != nil {
		board.DisplayOrder = *req.DisplayOrder
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
	}
	return toBoardResponse(board), nil
}

// DeleteBoard soft deletes an empty board. Boards still holding posts are
// refused so content never silently disappears.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Board not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	postCount, err := s.postRepo.CountByBoard(ctx, board.ID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}
	if postCount > 0 {
		return response.NewConflictError("Board still has posts", "")
	}

	if err := s.boardRepo.Delete(ctx, board.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.logger.Info("Board deleted", zap.String("board_id", board.ID.String()))
	return nil
}

// boardReadDenied maps a failed read check to 401 for anonymous callers and
// 403 for signed-in ones.
func boardReadDenied(user *domain.User) error {
	if user == nil {
		return response.NewUnauthorizedError("Sign in to view this board", "")
	}
	return response.NewForbiddenError("You do not have access to this board", "")
}

// boardWriteDenied is the write-side counterpart of boardReadDenied
func boardWriteDenied(user *domain.User) error {
	if user == nil {
		return response.NewUnauthorizedError("Sign in to write on this board", "")
	}
	return response.NewForbiddenError("You do not have permission to write on this board", "")
}
