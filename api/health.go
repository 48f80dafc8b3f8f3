package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	database := "connected"
	status := "healthy"
	if err := s.mongoStore.Ping(ctx); err != nil {
		log.WithError(err).Warn("mongo ping")
		database = "disconnected"
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"database": database,
		"features": gin.H{
			"groups":            true,
			"notifications":     true,
			"rankings":          true,
			"real_time_updates": true,
		},
	})
}

func (s *Server) getStats(c *gin.Context) {
	stats, err := s.mongoStore.GetStats()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
