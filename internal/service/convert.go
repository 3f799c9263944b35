package service

import (
	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
)

// toAuthorResponse converts a preloaded author to its summary form
func toAuthorResponse(user *domain.User) *dto.AuthorResponse {
	if user == nil {
		return nil
	}
	return &dto.AuthorResponse{
		UserID:   user.ID,
		Username: user.Username,
	}
}

// toUserResponse converts domain.User to dto.UserResponse
func toUserResponse(user *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// toBoardResponse converts domain.Board to dto.BoardResponse
func toBoardResponse(board *domain.Board) *dto.BoardResponse {
	return &dto.BoardResponse{
		BoardID:      board.ID,
		Slug:         board.Slug,
		Name:         board.Name,
		Description:  board.Description,
		Icon:         board.Icon,
		CanRead:      string(board.CanRead),
		CanWrite:     string(board.CanWrite),
		DisplayOrder: board.DisplayOrder,
		IsActive:     !board.DeletedAt.Valid,
		CreatedAt:    board.CreatedAt,
		UpdatedAt:    board.UpdatedAt,
	}
}

// toPostResponse converts domain.Post to dto.PostResponse
func toPostResponse(post *domain.Post) *dto.PostResponse {
	return &dto.PostResponse{
		PostID:    post.ID,
		BoardID:   post.BoardID,
		Title:     post.Title,
		Content:   post.Content,
		ViewCount: post.ViewCount,
		IsPinned:  post.IsPinned,
		Author:    toAuthorResponse(post.Author),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// toPostResponses converts a post slice
func toPostResponses(posts []*domain.Post) []*dto.PostResponse {
	responses := make([]*dto.PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = toPostResponse(post)
	}
	return responses
}

// toCommentResponse converts domain.Comment to dto.CommentResponse
// without replies; hierarchy assembly attaches them.
func toCommentResponse(comment *domain.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		CommentID: comment.ID,
		PostID:    comment.PostID,
		ParentID:  comment.ParentID,
		Content:   comment.Content,
		Author:    toAuthorResponse(comment.Author),
		Replies:   []*dto.CommentResponse{},
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
