package services

import (
	"errors"
	"fmt"
	"time"

	"workhub-api/internal/apperr"
	"workhub-api/internal/models"
	"workhub-api/internal/notify"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskPatch carries the fields UpdateTask may change. Status, priority and
// assignee have dedicated operations and are deliberately absent.
type TaskPatch struct {
	Name        *string
	Description *string
	Deadline    *time.Time
}

// TaskService manages tasks within projects.
type TaskService struct {
	db       *gorm.DB
	notifier notify.Notifier

	// enforceAssigneeMembership rejects assigning a task to a user with no
	// connection to the task's project.
	enforceAssigneeMembership bool
}

func NewTaskService(db *gorm.DB, notifier notify.Notifier, enforceAssigneeMembership bool) *TaskService {
	return &TaskService{
		db:                        db,
		notifier:                  notifier,
		enforceAssigneeMembership: enforceAssigneeMembership,
	}
}

// ListTasks returns all tasks of a project.
func (s *TaskService) ListTasks(projectID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask retrieves a task by id.
func (s *TaskService) GetTask(taskID string) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", apperr.ErrTaskNotFound, taskID)
		}
		return nil, err
	}
	return &task, nil
}

// CreateTask persists a new task in the project with the reporter set to the
// calling user. Id and creation timestamp are server-assigned.
func (s *TaskService) CreateTask(reporter models.User, task models.Task, projectID string) (*models.Task, error) {
	var count int64
	if err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: id %s", apperr.ErrProjectNotFound, projectID)
	}

	task.ID = uuid.NewString()
	task.ProjectID = projectID
	task.ReporterID = &reporter.ID
	task.CreatedAt = time.Now()
	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask overwrites name, description and deadline only.
func (s *TaskService) UpdateTask(taskID string, patch TaskPatch) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		task.Name = *patch.Name
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Deadline != nil {
		task.Deadline = patch.Deadline
	}

	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task permanently.
func (s *TaskService) DeleteTask(taskID string) error {
	task, err := s.GetTask(taskID)
	if err != nil {
		return err
	}
	return s.db.Delete(task).Error
}

// UpdateStatus sets only the status of a task. No notification.
func (s *TaskService) UpdateStatus(taskID string, status models.TaskStatus) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	task.Status = status
	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// UpdatePriority sets only the priority of a task. No notification.
func (s *TaskService) UpdatePriority(taskID string, priority models.TaskPriority) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	task.Priority = priority
	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateAssignee assigns the task to the given user and emails them a
// task-assignment notice addressed from the task's reporter. A nil assignee
// id clears the assignment silently.
func (s *TaskService) UpdateAssignee(taskID string, assigneeID *string) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	if assigneeID == nil {
		task.AssigneeID = nil
		if err := s.db.Save(task).Error; err != nil {
			return nil, err
		}
		return task, nil
	}

	var assignee models.User
	if err := s.db.Where("id = ?", *assigneeID).First(&assignee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assignee not found: %s", apperr.ErrUserNotFound, *assigneeID)
		}
		return nil, err
	}

	if s.enforceAssigneeMembership {
		var count int64
		err := s.db.Model(&models.UserProjectConnection{}).
			Where("project_id = ? AND user_id = ?", task.ProjectID, assignee.ID).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: assignee %s is not a member of project %s", apperr.ErrInvalidMembership, assignee.Email, task.ProjectID)
		}
	}

	task.AssigneeID = &assignee.ID
	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}

	var project models.Project
	if err := s.db.Where("id = ?", task.ProjectID).First(&project).Error; err != nil {
		return nil, err
	}

	var reporter models.User
	if task.ReporterID != nil {
		// Best effort: a reporter deleted since task creation leaves the
		// "from" names blank in the notification.
		_ = s.db.Where("id = ?", *task.ReporterID).First(&reporter).Error
	}

	s.notifier.Send(notify.TaskAssignmentEmail(assignee, reporter, *task, project))
	return task, nil
}
