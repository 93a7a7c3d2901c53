package models

// Project represents a project in the system
type Project struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"not null"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status" gorm:"type:text;not null"`
}

// TableName specifies the table name for Project Model
func (Project) TableName() string {
	return "projects"
}
