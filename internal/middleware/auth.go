package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/response"
	"community-board-api/internal/util"
)

// accessTokenCookie is the session cookie set at login
const accessTokenCookie = "access_token"

// UserLoader loads the profile row behind a session token
type UserLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// TokenBlacklist checks whether a token was revoked by logout
type TokenBlacklist interface {
	Contains(ctx context.Context, token string) (bool, error)
}

// SessionAuth resolves the session cookie into the current user and stores
// it in the gin context. Requests with no cookie, a bad token or a
// blacklisted token proceed as anonymous; route guards decide whether that
// is acceptable. 익명 요청도 여기서는 통과시킨다.
func SessionAuth(jwtSecret string, users UserLoader, blacklist TokenBlacklist, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(accessTokenCookie)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		userID, ok := parseSessionToken(tokenString, jwtSecret)
		if !ok {
			c.Next()
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.Contains(c.Request.Context(), tokenString)
			if err != nil {
				// Fail open on blacklist outages; tokens still carry a
				// short expiry.
				logger.Warn("Token blacklist check failed", zap.Error(err))
			} else if revoked {
				c.Next()
				return
			}
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Error("Failed to load session user",
					zap.String("user_id", userID.String()),
					zap.Error(err),
				)
			}
			c.Next()
			return
		}

		c.Set(util.ContextUserKey, user)
		c.Next()
	}
}

// parseSessionToken verifies the HS256 signature and audience, returning the
// subject as the user ID.
func parseSessionToken(tokenString, jwtSecret string) (uuid.UUID, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	}, jwt.WithAudience("authenticated"))
	if err != nil || !token.Valid {
		return uuid.Nil, false
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// RequireAuth rejects anonymous requests with 401
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if util.CurrentUser(c) == nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin requests. Anonymous callers get 401,
// signed-in non-admins get 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.CurrentUser(c)
		if user == nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		if !user.IsAdmin {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Admin privileges required")
			c.Abort()
			return
		}
		c.Next()
	}
}
