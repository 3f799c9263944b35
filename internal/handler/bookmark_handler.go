package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"community-board-api/internal/response"
	"community-board-api/internal/service"
	"community-board-api/internal/util"
)

type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkService: bookmarkService,
	}
}

// ListBookmarks godoc
// @Summary      북마크 목록 조회
// @Description  내 북마크 목록을 최신순으로 조회합니다
// @Tags         bookmarks
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.SuccessResponse{data=dto.BookmarkListResponse} "북마크 목록 조회 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Router       /bookmarks [get]
func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	user := util.CurrentUser(c)
	page, perPage := parsePageQuery(c)

	bookmarks, err := h.bookmarkService.ListBookmarks(c.Request.Context(), user.ID, page, perPage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, bookmarks)
}

// AddBookmark godoc
// @Summary      북마크 추가
// @Description  게시글을 북마크합니다. 게시글당 한 번만 가능합니다
// @Tags         bookmarks
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      201 {object} response.SuccessResponse{data=dto.BookmarkResponse} "북마크 추가 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 북마크된 게시글"
// @Router       /posts/{postId}/bookmark [post]
func (h *BookmarkHandler) AddBookmark(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	bookmark, err := h.bookmarkService.AddBookmark(c.Request.Context(), util.CurrentUser(c).ID, postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, bookmark)
}

// RemoveBookmark godoc
// @Summary      북마크 삭제
// @Description  게시글의 북마크를 해제합니다
// @Tags         bookmarks
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse "북마크 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "북마크를 찾을 수 없음"
// @Router       /posts/{postId}/bookmark [delete]
func (h *BookmarkHandler) RemoveBookmark(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	if err := h.bookmarkService.RemoveBookmark(c.Request.Context(), util.CurrentUser(c).ID, postID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Bookmark removed"})
}

// GetBookmarkStatus godoc
// @Summary      북마크 여부 조회
// @Description  게시글의 북마크 여부를 조회합니다
// @Tags         bookmarks
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BookmarkStatusResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Router       /posts/{postId}/bookmark [get]
func (h *BookmarkHandler) GetBookmarkStatus(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	status, err := h.bookmarkService.IsBookmarked(c.Request.Context(), util.CurrentUser(c).ID, postID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, status)
}
