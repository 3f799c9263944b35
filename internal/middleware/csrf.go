package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/response"
	"community-board-api/internal/util"
)

const (
	csrfCookie    = "csrf_token"
	csrfHeader    = "X-CSRF-Token"
	csrfFormField = "csrf_token"
)

// CSRF enforces the double-submit cookie pattern on state-changing methods.
// The client must echo the csrf_token cookie back in the X-CSRF-Token header
// or a csrf_token form field; the two values are compared in constant time.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		cookieToken, err := c.Cookie(csrfCookie)
		if err != nil || cookieToken == "" {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "CSRF token missing")
			c.Abort()
			return
		}

		submitted := c.GetHeader(csrfHeader)
		if submitted == "" {
			submitted = c.PostForm(csrfFormField)
		}

		if !util.VerifyCSRFToken(cookieToken, submitted) {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "CSRF token mismatch")
			c.Abort()
			return
		}

		c.Next()
	}
}
