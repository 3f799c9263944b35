package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"community-board-api/internal/client"
	"community-board-api/internal/config"
	"community-board-api/internal/domain"
	"community-board-api/internal/middleware"
	"community-board-api/internal/repository"
	"community-board-api/internal/service"
)

const integrationJWTSecret = "integration-test-secret"

// memoryBlacklist replaces the redis-backed token blacklist in tests
type memoryBlacklist struct {
	revoked map[string]bool
}

func newMemoryBlacklist() *memoryBlacklist {
	return &memoryBlacklist{revoked: make(map[string]bool)}
}

func (b *memoryBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	b.revoked[token] = true
	return nil
}

func (b *memoryBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	return b.revoked[token], nil
}

type integrationEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	blacklist *memoryBlacklist
}

// issueSessionToken mints the HS256 token the identity provider would issue
func issueSessionToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"aud": "authenticated",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(integrationJWTSecret))
	require.NoError(t, err)
	return signed
}

// setupIntegrationEnv wires sqlite, real repositories and services, and the
// full middleware chain behind an httptest identity provider.
func setupIntegrationEnv(t *testing.T) *integrationEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Board{}, &domain.Post{}, &domain.Comment{}, &domain.Bookmark{},
	))

	// GoTrue-shaped stub: every signup/login succeeds with a real HS256 token
	identityStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := uuid.New()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  issueSessionToken(t, userID),
			"refresh_token": "refresh-" + userID.String(),
			"expires_in":    3600,
			"user":          map[string]string{"id": userID.String()},
		})
	}))
	t.Cleanup(identityStub.Close)

	logger := zap.NewNop()
	blacklist := newMemoryBlacklist()

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)

	identityClient := client.NewIdentityClient(identityStub.URL, "", 5*time.Second, logger, nil)

	authService := service.NewAuthService(userRepo, identityClient, blacklist, integrationJWTSecret, logger, nil)
	_ = service.NewUserService(userRepo, logger)
	boardService := service.NewBoardService(boardRepo, postRepo, logger)
	postService := service.NewPostService(postRepo, boardRepo, logger, nil)
	commentService := service.NewCommentService(commentRepo, postRepo, logger, nil)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, postRepo, logger)
	searchService := service.NewSearchService(postRepo, logger)

	cookieCfg := config.CookieConfig{SameSite: "lax"}
	authHandler := NewAuthHandler(authService, cookieCfg)
	boardHandler := NewBoardHandler(boardService)
	postHandler := NewPostHandler(postService)
	commentHandler := NewCommentHandler(commentService)
	bookmarkHandler := NewBookmarkHandler(bookmarkService)
	searchHandler := NewSearchHandler(searchService)

	r := gin.New()
	r.Use(middleware.SessionAuth(integrationJWTSecret, userRepo, blacklist, logger))

	api := r.Group("/api")
	api.Use(middleware.CSRF())
	{
		api.GET("/auth/csrf", authHandler.CSRFToken)
		api.GET("/auth/me", authHandler.Me)
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/boards", boardHandler.ListBoards)
		api.GET("/boards/:boardId", boardHandler.GetBoard)
		api.GET("/boards/:boardId/posts", postHandler.ListPosts)
		api.GET("/posts/:postId", postHandler.GetPost)
		api.GET("/posts/:postId/comments", commentHandler.ListComments)
		api.GET("/search", searchHandler.Search)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth())
		{
			authed.POST("/boards/:boardId/posts", postHandler.CreatePost)
			authed.POST("/posts/:postId/comments", commentHandler.CreateComment)
			authed.GET("/posts/:postId/bookmark", bookmarkHandler.GetBookmarkStatus)
			authed.POST("/posts/:postId/bookmark", bookmarkHandler.AddBookmark)
			authed.DELETE("/posts/:postId/bookmark", bookmarkHandler.RemoveBookmark)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/boards", boardHandler.CreateBoard)
		}
	}

	noCSRF := r.Group("/api")
	{
		noCSRF.POST("/auth/signup", authHandler.Signup)
		noCSRF.POST("/auth/login", authHandler.Login)
	}

	return &integrationEnv{router: r, db: db, blacklist: blacklist}
}

// seedUser inserts a profile row and returns its session cookie value
func (env *integrationEnv) seedUser(t *testing.T, username string, isAdmin bool) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	require.NoError(t, env.db.Create(&domain.User{
		ID:       userID,
		Email:    username + "@example.com",
		Username: username,
		IsAdmin:  isAdmin,
	}).Error)
	return userID, issueSessionToken(t, userID)
}

func (env *integrationEnv) seedBoard(t *testing.T, slug string) *domain.Board {
	t.Helper()
	board := &domain.Board{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Slug:      slug,
		Name:      slug,
		CanRead:   domain.AccessAll,
		CanWrite:  domain.AccessMember,
	}
	require.NoError(t, env.db.Create(board).Error)
	return board
}

// do runs a request with optional session and CSRF cookies
func (env *integrationEnv) do(method, path, sessionToken string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		payload, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: sessionToken})
	}
	// Double-submit pair for state-changing methods
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "test-csrf-token"})
	req.Header.Set("X-CSRF-Token", "test-csrf-token")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestIntegration_SignupSetsSessionCookies(t *testing.T) {
	env := setupIntegrationEnv(t)

	w := env.do(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "new@example.com",
		"password": "password1",
		"username": "new_user",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	cookies := map[string]*http.Cookie{}
	for _, cookie := range w.Result().Cookies() {
		cookies[cookie.Name] = cookie
	}
	require.Contains(t, cookies, "access_token")
	require.Contains(t, cookies, "refresh_token")
	require.Contains(t, cookies, "csrf_token")

	assert.True(t, cookies["access_token"].HttpOnly, "access token must be http-only")
	assert.True(t, cookies["refresh_token"].HttpOnly, "refresh token must be http-only")
	assert.False(t, cookies["csrf_token"].HttpOnly, "csrf token must be readable by the client")

	data := decodeData(t, w)
	assert.Equal(t, "new_user", data["username"])
}

func TestIntegration_PostLifecycle(t *testing.T) {
	env := setupIntegrationEnv(t)
	board := env.seedBoard(t, "general")
	_, memberToken := env.seedUser(t, "member", false)

	// Anonymous writes are rejected before reaching the service
	w := env.do(http.MethodPost, "/api/boards/general/posts", "", map[string]string{
		"title": "anon", "content": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Member creates a post, script tags are stripped on the way in
	w = env.do(http.MethodPost, "/api/boards/general/posts", memberToken, map[string]string{
		"title":   "첫 번째 글",
		"content": "<p>환영합니다</p><script>alert(1)</script>",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	postID := data["postId"].(string)
	assert.NotContains(t, data["content"], "script")

	// Anyone can read it; the view counter moves
	w = env.do(http.MethodGet, "/api/posts/"+postID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, float64(1), data["viewCount"])
	assert.Equal(t, board.Slug, data["board"].(map[string]interface{})["slug"])

	// Board listing shows the post
	w = env.do(http.MethodGet, "/api/boards/"+board.ID.String()+"/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestIntegration_CommentDepthLimit(t *testing.T) {
	env := setupIntegrationEnv(t)
	env.seedBoard(t, "general")
	_, memberToken := env.seedUser(t, "commenter", false)

	w := env.do(http.MethodPost, "/api/boards/general/posts", memberToken, map[string]string{
		"title": "thread", "content": "body",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	postID := decodeData(t, w)["postId"].(string)

	// Top-level comment
	w = env.do(http.MethodPost, "/api/posts/"+postID+"/comments", memberToken, map[string]string{
		"content": "comment",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	commentID := decodeData(t, w)["commentId"].(string)

	// Reply works
	w = env.do(http.MethodPost, "/api/posts/"+postID+"/comments", memberToken, map[string]interface{}{
		"content":  "reply",
		"parentId": commentID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	replyID := decodeData(t, w)["commentId"].(string)

	// Reply to a reply is refused
	w = env.do(http.MethodPost, "/api/posts/"+postID+"/comments", memberToken, map[string]interface{}{
		"content":  "too deep",
		"parentId": replyID,
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Listing returns the two-level tree
	w = env.do(http.MethodGet, "/api/posts/"+postID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Len(t, envelope.Data[0]["replies"], 1)
}

func TestIntegration_BookmarkFlow(t *testing.T) {
	env := setupIntegrationEnv(t)
	env.seedBoard(t, "general")
	_, memberToken := env.seedUser(t, "collector", false)

	w := env.do(http.MethodPost, "/api/boards/general/posts", memberToken, map[string]string{
		"title": "bookmarkable", "content": "body",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	postID := decodeData(t, w)["postId"].(string)

	w = env.do(http.MethodPost, "/api/posts/"+postID+"/bookmark", memberToken, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Second attempt conflicts
	w = env.do(http.MethodPost, "/api/posts/"+postID+"/bookmark", memberToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	w = env.do(http.MethodGet, "/api/posts/"+postID+"/bookmark", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["bookmarked"])

	w = env.do(http.MethodDelete, "/api/posts/"+postID+"/bookmark", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Removing again is a 404
	w = env.do(http.MethodDelete, "/api/posts/"+postID+"/bookmark", memberToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegration_AdminGuards(t *testing.T) {
	env := setupIntegrationEnv(t)
	_, memberToken := env.seedUser(t, "plain", false)
	_, adminToken := env.seedUser(t, "boss", true)

	body := map[string]string{"name": "공지사항", "slug": "notice"}

	w := env.do(http.MethodPost, "/api/admin/boards", "", body)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/admin/boards", memberToken, body)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodPost, "/api/admin/boards", adminToken, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "notice", decodeData(t, w)["slug"])
}

func TestIntegration_SearchFindsPosts(t *testing.T) {
	env := setupIntegrationEnv(t)
	env.seedBoard(t, "general")
	_, memberToken := env.seedUser(t, "author", false)

	w := env.do(http.MethodPost, "/api/boards/general/posts", memberToken, map[string]string{
		"title": "Gopher news", "content": "generics landed",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/api/search?q=gopher&type=title", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, float64(1), data["total"])

	// Unknown search type is a 400
	w = env.do(http.MethodGet, "/api/search?q=gopher&type=author", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntegration_LogoutRevokesSession(t *testing.T) {
	env := setupIntegrationEnv(t)
	_, token := env.seedUser(t, "leaver", false)

	// Session works before logout
	w := env.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The blacklisted token no longer resolves a user
	w = env.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIntegration_CSRFRejectsStateChanges(t *testing.T) {
	env := setupIntegrationEnv(t)
	_, token := env.seedUser(t, "victim", false)

	// Logout without the CSRF pair is refused
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestIntegration_SearchResponseShape(t *testing.T) {
	env := setupIntegrationEnv(t)

	w := env.do(http.MethodGet, "/api/search?q=nothing", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "nothing", data["query"])
	assert.Equal(t, "all", data["searchType"])
	assert.Equal(t, float64(0), data["total"])
	assert.Empty(t, data["page_range"])
}
