package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"community-board-api/internal/client"
	"community-board-api/internal/domain"
	"community-board-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	FindAllFunc        func(ctx context.Context, offset, limit int) ([]*domain.User, error)
	CountFunc          func(ctx context.Context) (int64, error)
	UpdateFunc         func(ctx context.Context, user *domain.User) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc     func(ctx context.Context, board *domain.Board) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*domain.Board, error)
	SlugExistsFunc func(ctx context.Context, slug string) (bool, error)
	FindAllFunc    func(ctx context.Context, includeInactive bool) ([]*domain.Board, error)
	CountFunc      func(ctx context.Context) (int64, error)
	UpdateFunc     func(ctx context.Context, board *domain.Board) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindBySlug(ctx context.Context, slug string) (*domain.Board, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockBoardRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug)
	}
	return false, nil
}

func (m *MockBoardRepository) FindAll(ctx context.Context, includeInactive bool) ([]*domain.Board, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateFunc             func(ctx context.Context, post *domain.Post) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	FindByBoardFunc        func(ctx context.Context, boardID uuid.UUID, offset, limit int) ([]*domain.Post, error)
	CountByBoardFunc       func(ctx context.Context, boardID uuid.UUID) (int64, error)
	FindByIDsFunc          func(ctx context.Context, ids []uuid.UUID) ([]*domain.Post, error)
	UpdateFunc             func(ctx context.Context, post *domain.Post) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	IncrementViewCountFunc func(ctx context.Context, id uuid.UUID) error
	SearchFunc             func(ctx context.Context, params repository.SearchParams) ([]*domain.Post, error)
	CountSearchFunc        func(ctx context.Context, params repository.SearchParams) (int64, error)
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPostRepository) FindByBoard(ctx context.Context, boardID uuid.UUID, offset, limit int) ([]*domain.Post, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID, offset, limit)
	}
	return nil, nil
}

func (m *MockPostRepository) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	if m.CountByBoardFunc != nil {
		return m.CountByBoardFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *MockPostRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Post, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPostRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, id)
	}
	return nil
}

func (m *MockPostRepository) Search(ctx context.Context, params repository.SearchParams) ([]*domain.Post, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockPostRepository) CountSearch(ctx context.Context, params repository.SearchParams) (int64, error) {
	if m.CountSearchFunc != nil {
		return m.CountSearchFunc(ctx, params)
	}
	return 0, nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc     func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByPostFunc func(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	UpdateFunc     func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByPostFunc != nil {
		return m.FindByPostFunc(ctx, postID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBookmarkRepository is a mock implementation of BookmarkRepository
type MockBookmarkRepository struct {
	CreateFunc            func(ctx context.Context, bookmark *domain.Bookmark) error
	FindByUserAndPostFunc func(ctx context.Context, userID, postID uuid.UUID) (*domain.Bookmark, error)
	FindByUserFunc        func(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Bookmark, error)
	CountByUserFunc       func(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteFunc            func(ctx context.Context, userID, postID uuid.UUID) error
	DeleteOrphanedFunc    func(ctx context.Context) (int64, error)
	CountFunc             func(ctx context.Context) (int64, error)
}

func (m *MockBookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bookmark)
	}
	return nil
}

func (m *MockBookmarkRepository) FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*domain.Bookmark, error) {
	if m.FindByUserAndPostFunc != nil {
		return m.FindByUserAndPostFunc(ctx, userID, postID)
	}
	return nil, nil
}

func (m *MockBookmarkRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Bookmark, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID, offset, limit)
	}
	return nil, nil
}

func (m *MockBookmarkRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, postID)
	}
	return nil
}

func (m *MockBookmarkRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	if m.DeleteOrphanedFunc != nil {
		return m.DeleteOrphanedFunc(ctx)
	}
	return 0, nil
}

func (m *MockBookmarkRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockIdentityClient is a mock implementation of client.IdentityClient
type MockIdentityClient struct {
	SignUpFunc             func(ctx context.Context, email, password string) (*client.Session, error)
	SignInWithPasswordFunc func(ctx context.Context, email, password string) (*client.Session, error)
	SignOutFunc            func(ctx context.Context, accessToken string) error
}

func (m *MockIdentityClient) SignUp(ctx context.Context, email, password string) (*client.Session, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password)
	}
	return &client.Session{UserID: uuid.New(), AccessToken: "token"}, nil
}

func (m *MockIdentityClient) SignInWithPassword(ctx context.Context, email, password string) (*client.Session, error) {
	if m.SignInWithPasswordFunc != nil {
		return m.SignInWithPasswordFunc(ctx, email, password)
	}
	return &client.Session{UserID: uuid.New(), AccessToken: "token"}, nil
}

func (m *MockIdentityClient) SignOut(ctx context.Context, accessToken string) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, accessToken)
	}
	return nil
}

// MockTokenBlacklist is an in-memory TokenBlacklist
type MockTokenBlacklist struct {
	AddFunc      func(ctx context.Context, token string, ttl time.Duration) error
	ContainsFunc func(ctx context.Context, token string) (bool, error)
}

func (m *MockTokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, token, ttl)
	}
	return nil
}

func (m *MockTokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	if m.ContainsFunc != nil {
		return m.ContainsFunc(ctx, token)
	}
	return false, nil
}
