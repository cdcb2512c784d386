package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/logger"
	"github.com/nickgalis/restful-task-manager/internal/repository"
	"github.com/nickgalis/restful-task-manager/internal/service"
)

// Handler bundles the services the HTTP surface exposes.
type Handler struct {
	Users      *service.UserService
	Categories *service.CategoryService
	Tasks      *service.TaskService
}

func NewHandler(db *gorm.DB) *Handler {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return &Handler{
		Users:      service.NewUserService(userRepo),
		Categories: service.NewCategoryService(categoryRepo, userRepo),
		Tasks:      service.NewTaskService(taskRepo, categoryRepo, userRepo),
	}
}

// writeError translates the service error taxonomy into the JSON error
// envelope. Unexpected failures are logged in full and answered with a
// generic 500.
func writeError(c *gin.Context, err error) {
	var validation *service.ValidationError
	var notFound *service.NotFoundError
	var conflict *service.ConflictError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflict.Error()})
	default:
		logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathID parses the :id segment. A non-numeric id answers 404, the same
// as an unroutable path.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return 0, false
	}
	return uint(id), true
}

// queryID parses an optional integer query parameter. Absent or
// non-numeric values impose no filter.
func queryID(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}
