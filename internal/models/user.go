package models

// User represents a user account in the system.
// The ID is immutable once created; email is unique and doubles as the
// login identifier.
type User struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	FirstName    string `json:"firstName" gorm:"not null"`
	LastName     string `json:"lastName"`
	ImageURL     string `json:"imageUrl"`
	PasswordHash string `json:"-"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
