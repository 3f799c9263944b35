package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

type SearchHandler struct {
	searchService service.SearchService
}

func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search godoc
// @Summary      게시글 검색
// @Description  제목 또는 내용으로 게시글을 검색합니다
// @Tags         search
// @Produce      json
// @Param        q query string true "Search query (max 100 chars)"
// @Param        type query string false "Search type" Enums(title, content, all) default(all)
// @Param        board_id query string false "Restrict to a board (UUID)"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.SuccessResponse{data=dto.SearchResponse} "검색 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var boardID *uuid.UUID
	if raw := c.Query("board_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
			return
		}
		boardID = &parsed
	}

	page, perPage := parsePageQuery(c)

	result, err := h.searchService.Search(c.Request.Context(), c.Query("q"), c.Query("type"), boardID, page, perPage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
