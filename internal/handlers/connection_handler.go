package handlers

import (
	"net/http"

	"workhub-api/internal/models"

	"github.com/gin-gonic/gin"
)

// UpsertConnectionRequest represents the member add/update payload
type UpsertConnectionRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// UpsertConnection handles POST /api/v1/projects/:projectId/members
// Adds a user to the project or updates their existing role.
func UpsertConnection(c *gin.Context) {
	projectID := c.Param("projectId")

	var req UpsertConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	connection, err := membershipService().UpsertConnection(req.Email, projectID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	broadcastProjectEvent(projectID, map[string]any{
		"type":      "member_upserted",
		"projectId": projectID,
		"userId":    connection.UserID,
		"role":      connection.Role,
		"version":   1,
	})

	c.JSON(http.StatusCreated, connection)
}

// ListMembers handles GET /api/v1/projects/:projectId/members
func ListMembers(c *gin.Context) {
	connections, err := membershipService().ListMembers(c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": connections,
		"count":   len(connections),
	})
}

// RemoveMember handles DELETE /api/v1/projects/:projectId/members/:email
// The project owner cannot be removed.
func RemoveMember(c *gin.Context) {
	projectID := c.Param("projectId")
	email := c.Param("email")

	if err := membershipService().RemoveConnection(projectID, email); err != nil {
		respondError(c, err)
		return
	}

	broadcastProjectEvent(projectID, map[string]any{
		"type":      "member_removed",
		"projectId": projectID,
		"email":     email,
		"version":   1,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

// GetMemberRole handles GET /api/v1/projects/:projectId/members/:userId/role
func GetMemberRole(c *gin.Context) {
	role, err := membershipService().GetRole(c.Param("userId"), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}
