package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickgalis/restful-task-manager/internal/service"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var in service.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request"})
		return
	}

	category, err := h.Categories.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context(), queryID(c, "user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.Categories.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in service.CategoryUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request"})
		return
	}

	category, err := h.Categories.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Categories.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
