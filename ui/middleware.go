package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures CORS for the browser frontend
func (s *Server) setupMiddleware() {
	allowed := make(map[string]bool, len(s.config.CORS.AllowedOrigins))
	for _, origin := range s.config.CORS.AllowedOrigins {
		allowed[origin] = true
	}

	s.router.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "*")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
