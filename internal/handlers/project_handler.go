package handlers

import (
	"net/http"

	"workhub-api/internal/middleware"
	"workhub-api/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateProjectRequest represents the project creation payload
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateProjectRequest represents the project update payload
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateProjectStatusRequest represents a minimal request to change status
type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateProject handles POST /api/v1/projects
// The authenticated user becomes the project owner.
func CreateProject(c *gin.Context) {
	creator, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.ProjectActive
	if req.Status != "" {
		parsed, err := models.ParseProjectStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = parsed
	}

	project, err := projectService().CreateProject(models.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	}, creator)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /api/v1/projects/:projectId
func GetProject(c *gin.Context) {
	project, err := projectService().GetProject(c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetUserProjects handles GET /api/v1/projects
// Returns every project the authenticated user is connected to.
func GetUserProjects(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	projects, err := membershipService().ListProjectsForUser(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

// UpdateProject handles PUT /api/v1/projects/:projectId
func UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status models.ProjectStatus
	if req.Status != "" {
		parsed, err := models.ParseProjectStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = parsed
	}

	project, err := projectService().UpdateProject(models.Project{
		ID:          c.Param("projectId"),
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProjectStatus handles PATCH /api/v1/projects/:projectId/status
func UpdateProjectStatus(c *gin.Context) {
	var req UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseProjectStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := projectService().UpdateProjectStatus(c.Param("projectId"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/v1/projects/:projectId
// Removes the project and cascades to its tasks and connections.
func DeleteProject(c *gin.Context) {
	projectID := c.Param("projectId")

	// Capture members before the cascade removes the connections
	event := map[string]any{
		"type":      "project_deleted",
		"projectId": projectID,
		"version":   1,
	}
	var memberIDs []string
	if members, err := membershipService().ListMembers(projectID); err == nil {
		for _, m := range members {
			memberIDs = append(memberIDs, m.UserID)
		}
	}

	if err := projectService().DeleteProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	broadcastToUsers(memberIDs, event)

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully", "id": projectID})
}
