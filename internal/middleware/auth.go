package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"eindr-intent-engine/internal/model"
	"eindr-intent-engine/pkg/response"
)

// HeaderUserID identifies the caller. The gateway in front of this service
// authenticates the session and forwards the resolved user id here.
const HeaderUserID = "X-User-ID"

const scopeKey = "scope"

// Auth extracts the request scope from the user header. Requests without it
// are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope set by Auth, or a zero scope when absent.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
