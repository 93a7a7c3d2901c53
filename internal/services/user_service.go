package services

import (
	"errors"
	"fmt"

	"workhub-api/internal/apperr"
	"workhub-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService manages user accounts and profiles.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser creates a new user after validating email uniqueness.
func (s *UserService) CreateUser(user models.User) (*models.User, error) {
	exists, err := s.Exists(user.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: email %s", apperr.ErrUserAlreadyExists, user.Email)
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %s", apperr.ErrUserNotFound, userID)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email address.
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: email %s", apperr.ErrUserNotFound, email)
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users.
func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser updates profile fields. Changing the email to one already in
// use is rejected; the id never changes.
func (s *UserService) UpdateUser(userID string, details models.User) (*models.User, error) {
	existing, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if details.Email != existing.Email {
		taken, err := s.Exists(details.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: email %s", apperr.ErrUserAlreadyExists, details.Email)
		}
	}

	existing.Email = details.Email
	existing.FirstName = details.FirstName
	existing.LastName = details.LastName
	existing.ImageURL = details.ImageURL

	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteUser removes a user. Task references to the user are cleared (set
// null, not cascade) and the user's memberships are deleted in the same
// transaction.
func (s *UserService) DeleteUser(userID string) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).Where("assignee_id = ?", userID).Update("assignee_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Task{}).Where("reporter_id = ?", userID).Update("reporter_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserProjectConnection{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&models.User{}).Error
	})
}

// Exists reports whether a user with the given email exists.
func (s *UserService) Exists(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
