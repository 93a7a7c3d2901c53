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

// ProjectService manages the project lifecycle.
type ProjectService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

func NewProjectService(db *gorm.DB, notifier notify.Notifier) *ProjectService {
	return &ProjectService{db: db, notifier: notifier}
}

// CreateProject persists a new project and its OWNER connection for the
// creator in one transaction, then emails the creator a creation notice and
// an addition notice.
func (s *ProjectService) CreateProject(project models.Project, creator models.User) (*models.Project, error) {
	project.ID = uuid.NewString()
	if project.Status == "" {
		project.Status = models.ProjectActive
	}

	connection := models.UserProjectConnection{
		ID:        uuid.NewString(),
		UserID:    creator.ID,
		ProjectID: project.ID,
		Role:      models.RoleOwner,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		return tx.Create(&connection).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Send(notify.ProjectCreationEmail(creator, project))
	s.notifier.Send(notify.ProjectAdditionEmail(creator, creator, project))

	return &project, nil
}

// GetProject retrieves a project by id.
func (s *ProjectService) GetProject(projectID string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", apperr.ErrProjectNotFound, projectID)
		}
		return nil, err
	}
	return &project, nil
}

// UpdateProject overwrites the mutable fields (name, description, status).
// Memberships are untouched.
func (s *ProjectService) UpdateProject(project models.Project) (*models.Project, error) {
	existing, err := s.GetProject(project.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = project.Name
	existing.Description = project.Description
	if project.Status != "" {
		existing.Status = project.Status
	}

	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteProject removes a project together with all its tasks and membership
// connections. The three deletes run in one transaction in dependency order:
// tasks, then connections, then the project row.
func (s *ProjectService) DeleteProject(projectID string) error {
	if _, err := s.GetProject(projectID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.UserProjectConnection{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", projectID).Delete(&models.Project{}).Error
	})
}

// UpdateProjectStatus sets only the status of a project.
func (s *ProjectService) UpdateProjectStatus(projectID string, status models.ProjectStatus) (*models.Project, error) {
	project, err := s.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	project.Status = status
	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}

	// Extension point: notify all project members of the status change.

	return project, nil
}
