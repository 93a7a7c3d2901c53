package services

import (
	"testing"

	"workhub-api/internal/models"
	"workhub-api/internal/notify"
	"workhub-api/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recorderNotifier captures notifications synchronously for assertions.
type recorderNotifier struct {
	messages []notify.Message
}

func (r *recorderNotifier) Send(msg notify.Message) {
	r.messages = append(r.messages, msg)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, firstName, lastName string) models.User {
	t.Helper()
	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// seedProject creates a project with an OWNER connection for the given user,
// going through the project service so the data matches production shape.
func seedProject(t *testing.T, db *gorm.DB, name string, owner models.User) models.Project {
	t.Helper()
	svc := NewProjectService(db, &recorderNotifier{})
	project, err := svc.CreateProject(models.Project{Name: name, Description: name + " description"}, owner)
	require.NoError(t, err)
	return *project
}

func connectionCount(t *testing.T, db *gorm.DB, projectID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.UserProjectConnection{}).Where("project_id = ?", projectID).Count(&count).Error)
	return count
}
