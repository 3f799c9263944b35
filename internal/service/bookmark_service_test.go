package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/response"
)

func TestBookmarkService_AddBookmark(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	mockPostRepo := &MockPostRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return newTestPost(postID, uuid.New(), uuid.New()), nil
		},
	}
	mockBookmarkRepo := &MockBookmarkRepository{
		CreateFunc: func(ctx context.Context, bookmark *domain.Bookmark) error {
			bookmark.ID = uuid.New()
			return nil
		},
	}
	service := NewBookmarkService(mockBookmarkRepo, mockPostRepo, zap.NewNop())

	resp, err := service.AddBookmark(context.Background(), userID, postID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Post == nil || resp.Post.PostID != postID {
		t.Error("Expected the bookmarked post in the response")
	}
}

func TestBookmarkService_AddBookmark_Duplicate(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	mockPostRepo := &MockPostRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return newTestPost(postID, uuid.New(), uuid.New()), nil
		},
	}
	mockBookmarkRepo := &MockBookmarkRepository{
		FindByUserAndPostFunc: func(ctx context.Context, uid, pid uuid.UUID) (*domain.Bookmark, error) {
			return &domain.Bookmark{ID: uuid.New(), UserID: uid, PostID: pid}, nil
		},
	}
	service := NewBookmarkService(mockBookmarkRepo, mockPostRepo, zap.NewNop())

	_, err := service.AddBookmark(context.Background(), userID, postID)
	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeAlreadyExists {
		t.Errorf("Expected conflict error, got %s", appErr.Code)
	}
}

func TestBookmarkService_AddBookmark_PostMissing(t *testing.T) {
	mockPostRepo := &MockPostRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := NewBookmarkService(&MockBookmarkRepository{}, mockPostRepo, zap.NewNop())

	_, err := service.AddBookmark(context.Background(), uuid.New(), uuid.New())
	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeNotFound {
		t.Errorf("Expected not found error, got %s", appErr.Code)
	}
}

func TestBookmarkService_RemoveBookmark_Missing(t *testing.T) {
	service := NewBookmarkService(&MockBookmarkRepository{}, &MockPostRepository{}, zap.NewNop())

	err := service.RemoveBookmark(context.Background(), uuid.New(), uuid.New())
	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeNotFound {
		t.Errorf("Expected not found error, got %s", appErr.Code)
	}
	if appErr.Message != "Bookmark not found" {
		t.Errorf("Unexpected message: %s", appErr.Message)
	}
}

func TestBookmarkService_IsBookmarked(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()
	mockBookmarkRepo := &MockBookmarkRepository{
		FindByUserAndPostFunc: func(ctx context.Context, uid, pid uuid.UUID) (*domain.Bookmark, error) {
			if uid == userID && pid == postID {
				return &domain.Bookmark{UserID: uid, PostID: pid}, nil
			}
			return nil, nil
		},
	}
	service := NewBookmarkService(mockBookmarkRepo, &MockPostRepository{}, zap.NewNop())

	status, err := service.IsBookmarked(context.Background(), userID, postID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !status.Bookmarked {
		t.Error("Expected bookmarked true")
	}

	status, _ = service.IsBookmarked(context.Background(), userID, uuid.New())
	if status.Bookmarked {
		t.Error("Expected bookmarked false for another post")
	}
}

func TestBookmarkService_ListBookmarks_SkipsDeletedPosts(t *testing.T) {
	userID := uuid.New()
	livePostID := uuid.New()
	deadPostID := uuid.New()

	mockBookmarkRepo := &MockBookmarkRepository{
		CountByUserFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 2, nil
		},
		FindByUserFunc: func(ctx context.Context, id uuid.UUID, offset, limit int) ([]*domain.Bookmark, error) {
			return []*domain.Bookmark{
				{ID: uuid.New(), UserID: userID, PostID: livePostID},
				{ID: uuid.New(), UserID: userID, PostID: deadPostID},
			}, nil
		},
	}
	mockPostRepo := &MockPostRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uuid.UUID) ([]*domain.Post, error) {
			// The deleted post is gone from the lookup
			return []*domain.Post{newTestPost(livePostID, uuid.New(), uuid.New())}, nil
		},
	}
	service := NewBookmarkService(mockBookmarkRepo, mockPostRepo, zap.NewNop())

	resp, err := service.ListBookmarks(context.Background(), userID, 1, 20)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resp.Bookmarks) != 1 {
		t.Fatalf("Expected 1 bookmark after dropping the dead post, got %d", len(resp.Bookmarks))
	}
	if resp.Bookmarks[0].Post.PostID != livePostID {
		t.Errorf("Expected the surviving post, got %s", resp.Bookmarks[0].Post.PostID)
	}
}
