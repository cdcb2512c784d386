package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/http/handlers"
	"github.com/nickgalis/restful-task-manager/internal/http/middleware"
)

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	h := handlers.NewHandler(db)

	r.GET("/", h.Home)
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.DELETE("/users/:id", h.DeleteUser)

		api.POST("/categories", h.CreateCategory)
		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:id", h.GetCategory)
		api.PUT("/categories/:id", h.UpdateCategory)
		api.DELETE("/categories/:id", h.DeleteCategory)

		api.POST("/tasks", h.CreateTask)
		api.GET("/tasks", h.ListTasks)
		api.GET("/tasks/:id", h.GetTask)
		api.PUT("/tasks/:id", h.UpdateTask)
		api.PATCH("/tasks/:id", h.PatchTask)
		api.DELETE("/tasks/:id", h.DeleteTask)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Resource not found"})
	})

	return r
}
