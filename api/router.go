package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tadeyemo32/persona-backend/services"
)

// SetupRoutes wires the enrichment API onto the engine. The coordinator is
// constructed by main and injected here; handlers never reach for globals.
func SetupRoutes(r *gin.Engine, coordinator *services.Coordinator) {
	h := &Handlers{Coordinator: coordinator}

	apiGroup := r.Group("/api")
	apiGroup.Use(IdentityMiddleware())
	{
		apiGroup.GET("/health", healthCheck)
		apiGroup.POST("/auth/login", loginHandler)
		apiGroup.POST("/enrich", h.enrichHandler)
		apiGroup.GET("/history", h.historyHandler)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
