package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"workhub-api/internal/apperr"
	"workhub-api/internal/database"
	"workhub-api/internal/models"
	"workhub-api/internal/notify"
	"workhub-api/internal/realtime"
	"workhub-api/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	notifier                  notify.Notifier = noopNotifier{}
	enforceAssigneeMembership bool
)

type noopNotifier struct{}

func (noopNotifier) Send(notify.Message) {}

// Init wires the notifier and feature flags used by the handlers.
func Init(n notify.Notifier, enforceMembership bool) {
	if n != nil {
		notifier = n
	}
	enforceAssigneeMembership = enforceMembership
}

func userService() *services.UserService {
	return services.NewUserService(database.GetDB())
}

func membershipService() *services.MembershipService {
	return services.NewMembershipService(database.GetDB(), notifier)
}

func projectService() *services.ProjectService {
	return services.NewProjectService(database.GetDB(), notifier)
}

func taskService() *services.TaskService {
	return services.NewTaskService(database.GetDB(), notifier, enforceAssigneeMembership)
}

// respondError maps the domain error taxonomy to HTTP statuses. Anything
// outside the taxonomy is an opaque infrastructure failure.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrUserNotFound),
		errors.Is(err, apperr.ErrProjectNotFound),
		errors.Is(err, apperr.ErrTaskNotFound),
		errors.Is(err, apperr.ErrConnectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidMembership):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// broadcastProjectEvent fans an event out to every member of a project.
func broadcastProjectEvent(projectID string, event map[string]any) {
	var connections []models.UserProjectConnection
	if err := database.GetDB().Where("project_id = ?", projectID).Find(&connections).Error; err != nil {
		return
	}
	userIDs := make([]string, 0, len(connections))
	for _, conn := range connections {
		userIDs = append(userIDs, conn.UserID)
	}
	broadcastToUsers(userIDs, event)
}

func broadcastToUsers(userIDs []string, event map[string]any) {
	if payload, err := json.Marshal(event); err == nil {
		realtime.GetHub().BroadcastToUsers(userIDs, payload)
	}
}
