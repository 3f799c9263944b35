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

type AdminHandler struct {
	userService service.UserService
}

func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{
		userService: userService,
	}
}

// ListUsers godoc
// @Summary      사용자 목록 조회
// @Description  전체 사용자 목록을 조회합니다 (관리자 전용)
// @Tags         admin
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.SuccessResponse{data=dto.UserListResponse} "사용자 목록 조회 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, perPage := parsePageQuery(c)

	users, err := h.userService.ListUsers(c.Request.Context(), page, perPage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, users)
}

// UpdateRole godoc
// @Summary      사용자 권한 변경
// @Description  사용자의 관리자 권한을 부여하거나 회수합니다. 자기 자신은 변경할 수 없습니다 (관리자 전용)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Param        request body dto.UpdateRoleRequest true "권한 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "권한 변경 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청 또는 자기 자신의 권한 변경"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Router       /admin/users/{userId}/role [patch]
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), util.CurrentUser(c).ID, targetID, *req.IsAdmin)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}
