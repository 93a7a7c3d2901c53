package services

import (
	"errors"
	"fmt"

	"workhub-api/internal/apperr"
	"workhub-api/internal/models"
	"workhub-api/internal/notify"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipService manages user-project connections and their roles.
// State-changing calls that create or delete a connection trigger exactly one
// notification; role updates trigger none.
type MembershipService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

func NewMembershipService(db *gorm.DB, notifier notify.Notifier) *MembershipService {
	return &MembershipService{db: db, notifier: notifier}
}

// UpsertConnection associates a user with a project under the given role.
// If a connection already exists its role is overwritten and no notification
// is sent; otherwise a new connection is created and the new member gets an
// "added to project" email addressed from the project owner.
func (s *MembershipService) UpsertConnection(userEmail, projectID string, role models.UserRole) (*models.UserProjectConnection, error) {
	var user models.User
	if err := s.db.Where("email = ?", userEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: email %s", apperr.ErrUserNotFound, userEmail)
		}
		return nil, err
	}

	var project models.Project
	if err := s.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", apperr.ErrProjectNotFound, projectID)
		}
		return nil, err
	}

	var existing models.UserProjectConnection
	err := s.db.Where("project_id = ? AND user_id = ?", projectID, user.ID).First(&existing).Error
	switch {
	case err == nil:
		// Idempotent role update, no notification.
		existing.Role = role
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	connection := models.UserProjectConnection{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ProjectID: projectID,
		Role:      role,
	}
	if err := s.db.Create(&connection).Error; err != nil {
		return nil, err
	}

	owner, err := s.projectOwner(projectID)
	if err != nil {
		return nil, err
	}
	s.notifier.Send(notify.ProjectAdditionEmail(user, *owner, project))

	return &connection, nil
}

// RemoveConnection removes a user from a project and notifies them. The
// OWNER connection cannot be removed; ownership must be transferred first.
func (s *MembershipService) RemoveConnection(projectID, userEmail string) error {
	var project models.Project
	if err := s.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %s", apperr.ErrProjectNotFound, projectID)
		}
		return err
	}

	var user models.User
	if err := s.db.Where("email = ?", userEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: email %s", apperr.ErrUserNotFound, userEmail)
		}
		return err
	}

	var connection models.UserProjectConnection
	if err := s.db.Where("project_id = ? AND user_id = ?", projectID, user.ID).First(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %s in project %s", apperr.ErrConnectionNotFound, userEmail, projectID)
		}
		return err
	}

	if connection.Role == models.RoleOwner {
		return fmt.Errorf("%w: cannot remove the project owner, transfer ownership first", apperr.ErrInvalidMembership)
	}

	owner, err := s.projectOwner(projectID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&connection).Error; err != nil {
		return err
	}

	s.notifier.Send(notify.ProjectRemovalEmail(user, *owner, project))
	return nil
}

// GetRole returns the user's role in a project via a direct keyed lookup on
// the (user, project) index.
func (s *MembershipService) GetRole(userID, projectID string) (models.UserRole, error) {
	var connection models.UserProjectConnection
	if err := s.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: user %s in project %s", apperr.ErrConnectionNotFound, userID, projectID)
		}
		return "", err
	}
	return connection.Role, nil
}

// ListProjectsForUser returns every project the user has a connection to.
func (s *MembershipService) ListProjectsForUser(userID string) ([]models.Project, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: id %s", apperr.ErrUserNotFound, userID)
	}

	var connections []models.UserProjectConnection
	if err := s.db.Preload("Project").Where("user_id = ?", userID).Find(&connections).Error; err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(connections))
	for _, c := range connections {
		projects = append(projects, c.Project)
	}
	return projects, nil
}

// ListMembers returns all connections of a project with their users loaded.
func (s *MembershipService) ListMembers(projectID string) ([]models.UserProjectConnection, error) {
	var count int64
	if err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: id %s", apperr.ErrProjectNotFound, projectID)
	}

	var connections []models.UserProjectConnection
	if err := s.db.Preload("User").Where("project_id = ?", projectID).Find(&connections).Error; err != nil {
		return nil, err
	}
	return connections, nil
}

// projectOwner resolves the project's OWNER for notification addressing.
// A project without an owner record is a data-integrity violation.
func (s *MembershipService) projectOwner(projectID string) (*models.User, error) {
	var connection models.UserProjectConnection
	err := s.db.Preload("User").
		Where("project_id = ? AND role = ?", projectID, models.RoleOwner).
		First(&connection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: owner not found for project %s", apperr.ErrProjectNotFound, projectID)
		}
		return nil, err
	}
	return &connection.User, nil
}
