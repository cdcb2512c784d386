package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickgalis/restful-task-manager/internal/service"
)

func (h *Handler) CreateTask(c *gin.Context) {
	var in service.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request"})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c *gin.Context) {
	in := service.TaskListInput{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		CategoryID: queryID(c, "category_id"),
		UserID:     queryID(c, "user_id"),
		SortBy:     c.Query("sort_by"),
		Order:      c.Query("order"),
	}

	tasks, err := h.Tasks.List(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in service.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request"})
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) PatchTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch service.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request"})
		return
	}

	task, err := h.Tasks.Patch(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
