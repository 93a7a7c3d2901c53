package models

import (
	"database/sql/driver"
	"fmt"
)

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "ACTIVE"
	ProjectOnHold   ProjectStatus = "ON_HOLD"
	ProjectArchived ProjectStatus = "ARCHIVED"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// UserRole represents a user's role within a project
type UserRole string

const (
	RoleOwner       UserRole = "OWNER"
	RoleTeamManager UserRole = "TEAM_MANAGER"
	RoleMember      UserRole = "MEMBER"
)

// ParseProjectStatus decodes a stored status string. Unknown values are an error.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectActive, ProjectOnHold, ProjectArchived:
		return ProjectStatus(s), nil
	}
	return "", fmt.Errorf("unknown project status: %q", s)
}

// ParseTaskStatus decodes a stored status string. Unknown values are an error.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("unknown task status: %q", s)
}

// ParseTaskPriority decodes a stored priority string. Unknown values are an error.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TaskPriority(s), nil
	}
	return "", fmt.Errorf("unknown task priority: %q", s)
}

// ParseUserRole decodes a stored role string. Unknown values are an error.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleOwner, RoleTeamManager, RoleMember:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("unknown user role: %q", s)
}

func scanString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("cannot scan %T as enum string", value)
}

// Scan implements sql.Scanner; rejects unknown stored values instead of defaulting.
func (s *ProjectStatus) Scan(value any) error {
	raw, err := scanString(value)
	if err != nil {
		return err
	}
	parsed, err := ParseProjectStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer; validates before write.
func (s ProjectStatus) Value() (driver.Value, error) {
	if _, err := ParseProjectStatus(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

// Scan implements sql.Scanner; rejects unknown stored values instead of defaulting.
func (s *TaskStatus) Scan(value any) error {
	raw, err := scanString(value)
	if err != nil {
		return err
	}
	parsed, err := ParseTaskStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value implements driver.Valuer; validates before write.
func (s TaskStatus) Value() (driver.Value, error) {
	if _, err := ParseTaskStatus(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

// Scan implements sql.Scanner; rejects unknown stored values instead of defaulting.
func (p *TaskPriority) Scan(value any) error {
	raw, err := scanString(value)
	if err != nil {
		return err
	}
	parsed, err := ParseTaskPriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer; validates before write.
func (p TaskPriority) Value() (driver.Value, error) {
	if _, err := ParseTaskPriority(string(p)); err != nil {
		return nil, err
	}
	return string(p), nil
}

// Scan implements sql.Scanner; rejects unknown stored values instead of defaulting.
func (r *UserRole) Scan(value any) error {
	raw, err := scanString(value)
	if err != nil {
		return err
	}
	parsed, err := ParseUserRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value implements driver.Valuer; validates before write.
func (r UserRole) Value() (driver.Value, error) {
	if _, err := ParseUserRole(string(r)); err != nil {
		return nil, err
	}
	return string(r), nil
}
