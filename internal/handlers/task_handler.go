package handlers

import (
	"net/http"
	"time"

	"workhub-api/internal/middleware"
	"workhub-api/internal/models"
	"workhub-api/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	AssigneeID  *string    `json:"assigneeId"`
}

// UpdateTaskRequest represents the request payload for updating a task.
// Status, priority and assignee have dedicated endpoints and are ignored here.
type UpdateTaskRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

// UpdateTaskStatusRequest represents a minimal request to change status
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTaskPriorityRequest represents a minimal request to change priority
type UpdateTaskPriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

// UpdateTaskAssigneeRequest carries the new assignee; null clears the assignment
type UpdateTaskAssigneeRequest struct {
	AssigneeID *string `json:"assigneeId"`
}

// GetTasks handles GET /api/v1/projects/:projectId/tasks
func GetTasks(c *gin.Context) {
	tasks, err := taskService().ListTasks(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// GetTaskByID handles GET /api/v1/projects/:projectId/tasks/:taskId
func GetTaskByID(c *gin.Context) {
	task, err := taskService().GetTask(c.Param("taskId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /api/v1/projects/:projectId/tasks
// The authenticated user becomes the task reporter.
func CreateTask(c *gin.Context) {
	reporter, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := models.Task{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
	}
	if req.Status != "" {
		status, err := models.ParseTaskStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		task.Status = status
	}
	if req.Priority != "" {
		priority, err := models.ParseTaskPriority(req.Priority)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		task.Priority = priority
	}

	projectID := c.Param("projectId")
	created, err := taskService().CreateTask(reporter, task, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Assignment at creation time goes through the dedicated operation so the
	// assignee validation and notification apply. If it fails the freshly
	// created task is removed again: a failed request must not leave an
	// orphan task behind.
	if req.AssigneeID != nil {
		assigned, err := taskService().UpdateAssignee(created.ID, req.AssigneeID)
		if err != nil {
			_ = taskService().DeleteTask(created.ID)
			respondError(c, err)
			return
		}
		created = assigned
	}

	broadcastProjectEvent(projectID, map[string]any{
		"type":      "task_created",
		"taskId":    created.ID,
		"projectId": projectID,
		"version":   1,
	})

	c.JSON(http.StatusCreated, created)
}

// UpdateTask handles PUT /api/v1/projects/:projectId/tasks/:taskId
// Only name, description and deadline may change here.
func UpdateTask(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := taskService().UpdateTask(c.Param("taskId"), services.TaskPatch{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	broadcastProjectEvent(task.ProjectID, map[string]any{
		"type":      "task_updated",
		"taskId":    task.ID,
		"projectId": task.ProjectID,
		"version":   1,
	})

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/projects/:projectId/tasks/:taskId
func DeleteTask(c *gin.Context) {
	taskID := c.Param("taskId")
	projectID := c.Param("projectId")

	if err := taskService().DeleteTask(taskID); err != nil {
		respondError(c, err)
		return
	}

	broadcastProjectEvent(projectID, map[string]any{
		"type":      "task_deleted",
		"taskId":    taskID,
		"projectId": projectID,
		"version":   1,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully", "id": taskID})
}

// UpdateTaskStatus handles PATCH /api/v1/projects/:projectId/tasks/:taskId/status
func UpdateTaskStatus(c *gin.Context) {
	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseTaskStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := taskService().UpdateStatus(c.Param("taskId"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskPriority handles PATCH /api/v1/projects/:projectId/tasks/:taskId/priority
func UpdateTaskPriority(c *gin.Context) {
	var req UpdateTaskPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priority, err := models.ParseTaskPriority(req.Priority)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := taskService().UpdatePriority(c.Param("taskId"), priority)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskAssignee handles PATCH /api/v1/projects/:projectId/tasks/:taskId/assignee
func UpdateTaskAssignee(c *gin.Context) {
	var req UpdateTaskAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := taskService().UpdateAssignee(c.Param("taskId"), req.AssigneeID)
	if err != nil {
		respondError(c, err)
		return
	}

	broadcastProjectEvent(task.ProjectID, map[string]any{
		"type":      "task_assigned",
		"taskId":    task.ID,
		"projectId": task.ProjectID,
		"version":   1,
	})

	c.JSON(http.StatusOK, task)
}
