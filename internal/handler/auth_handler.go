package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/config"
	"community-board-api/internal/dto"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
	"community-board-api/internal/util"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
	csrfTokenCookie    = "csrf_token"

	refreshTokenMaxAge = 7 * 24 * 60 * 60
	csrfTokenMaxAge    = 60 * 60
)

type AuthHandler struct {
	authService service.AuthService
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authService service.AuthService, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieCfg:   cookieCfg,
	}
}

// Signup godoc
// @Summary      회원가입
// @Description  이메일과 비밀번호로 새 계정을 만들고 세션 쿠키를 발급합니다
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "회원가입 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.AuthUserResponse} "회원가입 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      409 {object} response.ErrorResponse "이미 사용 중인 이메일 또는 사용자명"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	session, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if !h.setSessionCookies(c, session) {
		return
	}
	response.SendSuccess(c, http.StatusCreated, session.User)
}

// Login godoc
// @Summary      로그인
// @Description  이메일과 비밀번호로 인증하고 세션 쿠키를 발급합니다
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "로그인 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.AuthUserResponse} "로그인 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 실패"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	session, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if !h.setSessionCookies(c, session) {
		return
	}
	response.SendSuccess(c, http.StatusOK, session.User)
}

// Logout godoc
// @Summary      로그아웃
// @Description  세션을 무효화하고 쿠키를 제거합니다
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse "로그아웃 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	accessToken, _ := c.Cookie(accessTokenCookie)

	if err := h.authService.Logout(c.Request.Context(), accessToken); err != nil {
		handleServiceError(c, err)
		return
	}

	h.clearSessionCookies(c)
	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary      현재 사용자 조회
// @Description  세션 쿠키에 해당하는 사용자 정보를 반환합니다
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.AuthUserResponse} "조회 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := util.CurrentUser(c)
	if user == nil {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	response.SendSuccess(c, http.StatusOK, &dto.AuthUserResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
}

// CSRFToken godoc
// @Summary      CSRF 토큰 발급
// @Description  새 CSRF 토큰을 발급하고 쿠키에도 설정합니다
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.CSRFTokenResponse} "발급 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /auth/csrf [get]
func (h *AuthHandler) CSRFToken(c *gin.Context) {
	token, err := util.GenerateCSRFToken()
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to issue CSRF token")
		return
	}

	// Readable by javascript so the client can echo it back in a header
	h.setCookie(c, csrfTokenCookie, token, csrfTokenMaxAge, false)
	response.SendSuccess(c, http.StatusOK, &dto.CSRFTokenResponse{CSRFToken: token})
}

// setSessionCookies installs the access, refresh and CSRF cookies. Returns
// false after writing an error response when CSRF token generation fails.
func (h *AuthHandler) setSessionCookies(c *gin.Context, session *service.AuthSession) bool {
	csrfToken, err := util.GenerateCSRFToken()
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to establish session")
		return false
	}

	h.setCookie(c, accessTokenCookie, session.AccessToken, session.ExpiresIn, true)
	h.setCookie(c, refreshTokenCookie, session.RefreshToken, refreshTokenMaxAge, true)
	h.setCookie(c, csrfTokenCookie, csrfToken, csrfTokenMaxAge, false)
	return true
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	h.setCookie(c, accessTokenCookie, "", -1, true)
	h.setCookie(c, refreshTokenCookie, "", -1, true)
	h.setCookie(c, csrfTokenCookie, "", -1, false)
}

func (h *AuthHandler) setCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	c.SetSameSite(sameSiteMode(h.cookieCfg.SameSite))
	c.SetCookie(name, value, maxAge, "/", h.cookieCfg.Domain, h.cookieCfg.Secure, httpOnly)
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
