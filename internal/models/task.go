package models

import (
	"time"
)

// Task represents a task in the system. Assignee and reporter are nullable
// references: deleting the referenced user clears the field rather than
// deleting the task.
type Task struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" gorm:"type:text;not null"`
	Priority    TaskPriority `json:"priority" gorm:"type:text;not null"`
	Deadline    *time.Time   `json:"deadline"`
	AssigneeID  *string      `json:"assigneeId" gorm:"column:assignee_id"`
	ReporterID  *string      `json:"reporterId" gorm:"column:reporter_id"`
	ProjectID   string       `json:"projectId" gorm:"column:project_id;index;not null"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
