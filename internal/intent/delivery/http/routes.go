package http

import (
	"github.com/gin-gonic/gin"

	"eindr-intent-engine/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require the caller identity header and are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	intents := rg.Group("/intents")
	{
		intents.POST("/interpret", mw.Auth(), mw.RateLimit(), h.Interpret)
		intents.POST("/classify", mw.Auth(), mw.RateLimit(), h.Classify)
		intents.POST("/process", mw.Auth(), mw.RateLimit(), h.Process)
	}
}
