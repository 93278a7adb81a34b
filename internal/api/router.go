package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the handlers. CORS is enabled only when origins are given.
func NewRouter(h *Handler, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(allowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: allowOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/hotels", h.Hotels)
		apiGroup.POST("/quote", h.Quote)
		apiGroup.POST("/rates", h.UploadRates)
	}
	return r
}
