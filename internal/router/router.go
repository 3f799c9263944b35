package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/client"
	"community-board-api/internal/config"
	"community-board-api/internal/handler"
	"community-board-api/internal/metrics"
	"community-board-api/internal/middleware"
	"community-board-api/internal/repository"
	"community-board-api/internal/service"
)

// Setup wires repositories, services, handlers and middleware into the
// gin engine.
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)

	// Initialize external clients
	identityClient := client.NewIdentityClient(cfg.Identity.BaseURL, cfg.Identity.APIKey, cfg.Identity.Timeout, logger, m)
	blacklist := service.NewRedisTokenBlacklist(redisClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, identityClient, blacklist, cfg.Identity.JWTSecret, logger, m)
	userService := service.NewUserService(userRepo, logger)
	boardService := service.NewBoardService(boardRepo, postRepo, logger)
	postService := service.NewPostService(postRepo, boardRepo, logger, m)
	commentService := service.NewCommentService(commentRepo, postRepo, logger, m)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, postRepo, logger)
	searchService := service.NewSearchService(postRepo, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Cookie)
	profileHandler := handler.NewProfileHandler(userService)
	boardHandler := handler.NewBoardHandler(boardService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	searchHandler := handler.NewSearchHandler(searchService)
	adminHandler := handler.NewAdminHandler(userService)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Middleware chain
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.SessionAuth(cfg.Identity.JWTSecret, userRepo, blacklist, logger))

	// Health and observability endpoints (no auth, no CSRF)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.Server.BasePath)
	api.Use(middleware.CSRF())
	{
		// Auth endpoints. Signup and login bootstrap the CSRF cookie, so
		// they are exempt from the double-submit check.
		auth := api.Group("/auth")
		{
			auth.GET("/csrf", authHandler.CSRFToken)
			auth.GET("/me", authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		// Public browsing. Read policies are enforced in the services.
		api.GET("/boards", boardHandler.ListBoards)
		api.GET("/boards/:boardId", boardHandler.GetBoard)
		api.GET("/boards/:boardId/posts", postHandler.ListPosts)
		api.GET("/posts/:postId", postHandler.GetPost)
		api.GET("/posts/:postId/comments", commentHandler.ListComments)
		api.GET("/search", searchHandler.Search)
		api.GET("/users/:userId", profileHandler.GetProfile)

		// Authenticated routes
		authed := api.Group("")
		authed.Use(middleware.RequireAuth())
		{
			authed.POST("/boards/:boardId/posts", postHandler.CreatePost)
			authed.PATCH("/posts/:postId", postHandler.UpdatePost)
			authed.DELETE("/posts/:postId", postHandler.DeletePost)

			authed.POST("/posts/:postId/comments", commentHandler.CreateComment)
			authed.PATCH("/comments/:commentId", commentHandler.UpdateComment)
			authed.DELETE("/comments/:commentId", commentHandler.DeleteComment)

			authed.GET("/bookmarks", bookmarkHandler.ListBookmarks)
			authed.GET("/posts/:postId/bookmark", bookmarkHandler.GetBookmarkStatus)
			authed.POST("/posts/:postId/bookmark", bookmarkHandler.AddBookmark)
			authed.DELETE("/posts/:postId/bookmark", bookmarkHandler.RemoveBookmark)

			authed.PATCH("/users/me", profileHandler.UpdateProfile)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/boards", boardHandler.CreateBoard)
			admin.PATCH("/boards/:boardId", boardHandler.UpdateBoard)
			admin.DELETE("/boards/:boardId", boardHandler.DeleteBoard)
			admin.POST("/posts/:postId/pin", postHandler.TogglePin)
			admin.GET("/users", adminHandler.ListUsers)
			admin.PATCH("/users/:userId/role", adminHandler.UpdateRole)
		}
	}

	// Signup and login live outside the CSRF group: a fresh browser has no
	// CSRF cookie yet and both endpoints only accept JSON credentials.
	noCSRF := r.Group(cfg.Server.BasePath)
	{
		noCSRF.POST("/auth/signup", authHandler.Signup)
		noCSRF.POST("/auth/login", authHandler.Login)
	}

	return r
}
