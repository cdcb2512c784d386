package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home answers the root endpoint with an API index.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Task Management API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"users":      "/api/users",
			"categories": "/api/categories",
			"tasks":      "/api/tasks",
		},
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
