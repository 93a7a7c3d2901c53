package models

// UserProjectConnection links one user to one project with exactly one role.
// The composite unique index guarantees at most one row per (user, project)
// pair and gives role lookups a direct keyed path.
type UserProjectConnection struct {
	ID        string   `json:"id" gorm:"primaryKey"`
	UserID    string   `json:"userId" gorm:"column:user_id;not null;uniqueIndex:idx_user_project"`
	ProjectID string   `json:"projectId" gorm:"column:project_id;not null;uniqueIndex:idx_user_project"`
	Role      UserRole `json:"role" gorm:"type:text;not null"`

	User    User    `json:"user" gorm:"foreignKey:UserID"`
	Project Project `json:"project" gorm:"foreignKey:ProjectID"`
}

// TableName specifies the table name for UserProjectConnection Model
func (UserProjectConnection) TableName() string {
	return "user_project_connections"
}
