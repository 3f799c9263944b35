package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"community-board-api/internal/dto"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
	"community-board-api/internal/util"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts godoc
// @Summary      게시글 목록 조회
// @Description  게시판의 게시글을 조회합니다. 고정 게시글이 먼저, 이후 최신순입니다
// @Tags         posts
// @Produce      json
// @Param        boardId path string true "Board ID (UUID) or slug"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.SuccessResponse{data=dto.PostListResponse} "게시글 목록 조회 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "접근 권한 없음"
// @Failure      404 {object} response.ErrorResponse "게시판을 찾을 수 없음"
// @Router       /boards/{boardId}/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, perPage := parsePageQuery(c)

	posts, err := h.postService.ListByBoard(c.Request.Context(), c.Param("boardId"), util.CurrentUser(c), page, perPage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, posts)
}

// GetPost godoc
// @Summary      게시글 조회
// @Description  게시글을 조회하고 조회수를 증가시킵니다
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PostDetailResponse} "게시글 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "접근 권한 없음"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Router       /posts/{postId} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), postID, util.CurrentUser(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// CreatePost godoc
// @Summary      게시글 작성
// @Description  게시판에 새 게시글을 작성합니다. 쓰기 권한이 필요합니다
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID) or slug"
// @Param        request body dto.CreatePostRequest true "게시글 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.PostResponse} "게시글 작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "쓰기 권한 없음"
// @Failure      404 {object} response.ErrorResponse "게시판을 찾을 수 없음"
// @Router       /boards/{boardId}/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), c.Param("boardId"), util.CurrentUser(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      게시글 수정
// @Description  게시글을 수정합니다. 작성자 또는 관리자만 가능합니다
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Param        request body dto.UpdatePostRequest true "게시글 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "게시글 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "수정 권한 없음"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Router       /posts/{postId} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), postID, util.CurrentUser(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// DeletePost godoc
// @Summary      게시글 삭제
// @Description  게시글을 삭제합니다. 작성자 또는 관리자만 가능합니다
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse "게시글 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "삭제 권한 없음"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Router       /posts/{postId} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), postID, util.CurrentUser(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Post deleted"})
}

// TogglePin godoc
// @Summary      게시글 고정 토글
// @Description  게시글의 고정 여부를 토글합니다 (관리자 전용)
// @Tags         posts
// @Produce      json
// @Param        postId path string true "Post ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "토글 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Post ID"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Router       /admin/posts/{postId}/pin [post]
func (h *PostHandler) TogglePin(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	post, err := h.postService.TogglePin(c.Request.Context(), postID, util.CurrentUser(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}
