package services

import (
	"testing"

	"workhub-api/internal/apperr"
	"workhub-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateProject_OwnerConnectionAndNotifications(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")

	recorder := &recorderNotifier{}
	svc := NewProjectService(db, recorder)

	project, err := svc.CreateProject(models.Project{Name: "Roadmap", Description: "Q4 roadmap"}, alice)
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)
	require.Equal(t, models.ProjectActive, project.Status)

	// Exactly one connection, and it is the creator's OWNER connection
	var connections []models.UserProjectConnection
	require.NoError(t, db.Where("project_id = ?", project.ID).Find(&connections).Error)
	require.Len(t, connections, 1)
	require.Equal(t, alice.ID, connections[0].UserID)
	require.Equal(t, models.RoleOwner, connections[0].Role)

	// Creation notice plus addition notice, both to the creator
	require.Len(t, recorder.messages, 2)
	for _, msg := range recorder.messages {
		require.Equal(t, alice.Email, msg.To)
		require.Contains(t, msg.Body, "Roadmap")
	}
}

func TestGetProject_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db, &recorderNotifier{})

	_, err := svc.GetProject("missing")
	require.ErrorIs(t, err, apperr.ErrProjectNotFound)
}

func TestUpdateProject(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	project := seedProject(t, db, "Roadmap", alice)

	svc := NewProjectService(db, &recorderNotifier{})
	updated, err := svc.UpdateProject(models.Project{
		ID:          project.ID,
		Name:        "Roadmap v2",
		Description: "updated",
		Status:      models.ProjectOnHold,
	})
	require.NoError(t, err)
	require.Equal(t, "Roadmap v2", updated.Name)
	require.Equal(t, models.ProjectOnHold, updated.Status)

	// Memberships untouched
	require.EqualValues(t, 1, connectionCount(t, db, project.ID))

	_, err = svc.UpdateProject(models.Project{ID: "missing", Name: "x"})
	require.ErrorIs(t, err, apperr.ErrProjectNotFound)
}

func TestUpdateProjectStatus(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	project := seedProject(t, db, "Roadmap", alice)

	svc := NewProjectService(db, &recorderNotifier{})
	updated, err := svc.UpdateProjectStatus(project.ID, models.ProjectArchived)
	require.NoError(t, err)
	require.Equal(t, models.ProjectArchived, updated.Status)

	_, err = svc.UpdateProjectStatus("missing", models.ProjectActive)
	require.ErrorIs(t, err, apperr.ErrProjectNotFound)
}

func TestDeleteProject_Cascades(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	bob := seedUser(t, db, "bob@x.com", "Bob", "Barker")
	project := seedProject(t, db, "Roadmap", alice)

	membership := NewMembershipService(db, &recorderNotifier{})
	_, err := membership.UpsertConnection(bob.Email, project.ID, models.RoleMember)
	require.NoError(t, err)

	tasks := NewTaskService(db, &recorderNotifier{}, false)
	for i := 0; i < 3; i++ {
		_, err := tasks.CreateTask(alice, models.Task{Name: "task"}, project.ID)
		require.NoError(t, err)
	}

	svc := NewProjectService(db, &recorderNotifier{})
	require.NoError(t, svc.DeleteProject(project.ID))

	var taskCount int64
	require.NoError(t, db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&taskCount).Error)
	require.Zero(t, taskCount)
	require.Zero(t, connectionCount(t, db, project.ID))

	_, err = svc.GetProject(project.ID)
	require.ErrorIs(t, err, apperr.ErrProjectNotFound)
}

func TestDeleteProject_NotFoundLeavesStoreUntouched(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	project := seedProject(t, db, "Roadmap", alice)

	svc := NewProjectService(db, &recorderNotifier{})
	err := svc.DeleteProject("missing")
	require.ErrorIs(t, err, apperr.ErrProjectNotFound)

	// Existing data unaffected
	var projectCount int64
	require.NoError(t, db.Model(&models.Project{}).Count(&projectCount).Error)
	require.EqualValues(t, 1, projectCount)
	require.EqualValues(t, 1, connectionCount(t, db, project.ID))
}
