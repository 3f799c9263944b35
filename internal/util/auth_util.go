package util

import (
	"github.com/gin-gonic/gin"

	"community-board-api/internal/domain"
)

// ContextUserKey is the gin context key holding the resolved session user
const ContextUserKey = "current_user"

// CurrentUser extracts the resolved session user from the gin context.
// Returns nil when the request carries no valid identity.
func CurrentUser(c *gin.Context) *domain.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
