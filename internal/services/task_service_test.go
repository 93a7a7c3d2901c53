package services

import (
	"testing"
	"time"

	"workhub-api/internal/apperr"
	"workhub-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateTask_Defaults(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	project := seedProject(t, db, "Roadmap", alice)

	svc := NewTaskService(db, &recorderNotifier{}, false)
	task, err := svc.CreateTask(alice, models.Task{Name: "Write docs"}, project.ID)
	require.NoError(t, err)

	require.NotEmpty(t, task.ID)
	require.Equal(t, project.ID, task.ProjectID)
	require.NotNil(t, task.ReporterID)
	require.Equal(t, alice.ID, *task.ReporterID)
	require.Equal(t, models.StatusTodo, task.Status)
	require.Equal(t, models.PriorityMedium, task.Priority)
	require.False(t, task.CreatedAt.IsZero())
	require.Nil(t, task.AssigneeID)
}

func TestCreateTask_ProjectNotFound(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")

	svc := NewTaskService(db, &recorderNotifier{}, false)
	_, err := svc.CreateTask(alice, models.Task{Name: "Write docs"}, "missing")
	require.ErrorIs(t, err, apperr.ErrProjectNotFound)
}

func TestUpdateTask_OnlyNameDescriptionDeadline(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	project := seedProject(t, db, "Roadmap", alice)

	svc := NewTaskService(db, &recorderNotifier{}, false)
	task, err := svc.CreateTask(alice, models.Task{Name: "Write docs", Status: models.StatusInProgress, Priority: models.PriorityHigh}, project.ID)
	require.NoError(t, err)

	name := "Write better docs"
	deadline := time.Now().Add(48 * time.Hour)
	updated, err := svc.UpdateTask(task.ID, TaskPatch{Name: &name, Deadline: &deadline})
	require.NoError(t, err)

	require.Equal(t, name, updated.Name)
	require.NotNil(t, updated.Deadline)
	// Dedicated-operation fields unchanged
	require.Equal(t, models.StatusInProgress, updated.Status)
	require.Equal(t, models.PriorityHigh, updated.Priority)
	require.Nil(t, updated.AssigneeID)

	_, err = svc.UpdateTask("missing", TaskPatch{Name: &name})
	require.ErrorIs(t, err, apperr.ErrTaskNotFound)
}

func TestUpdateStatusAndPriority(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	project := seedProject(t, db, "Roadmap", alice)

	recorder := &recorderNotifier{}
	svc := NewTaskService(db, recorder, false)
	task, err := svc.CreateTask(alice, models.Task{Name: "Write docs"}, project.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(task.ID, models.StatusDone)
	require.NoError(t, err)
	require.Equal(t, models.StatusDone, updated.Status)

	updated, err = svc.UpdatePriority(task.ID, models.PriorityLow)
	require.NoError(t, err)
	require.Equal(t, models.PriorityLow, updated.Priority)

	// Single-field overwrites never notify
	require.Empty(t, recorder.messages)

	_, err = svc.UpdateStatus("missing", models.StatusDone)
	require.ErrorIs(t, err, apperr.ErrTaskNotFound)
	_, err = svc.UpdatePriority("missing", models.PriorityLow)
	require.ErrorIs(t, err, apperr.ErrTaskNotFound)
}

func TestUpdateAssignee_NotifiesFromReporter(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	bob := seedUser(t, db, "bob@x.com", "Bob", "Barker")
	project := seedProject(t, db, "Roadmap", alice)

	recorder := &recorderNotifier{}
	svc := NewTaskService(db, recorder, false)
	task, err := svc.CreateTask(alice, models.Task{Name: "Write docs", Priority: models.PriorityHigh}, project.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateAssignee(task.ID, &bob.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.AssigneeID)
	require.Equal(t, bob.ID, *updated.AssigneeID)

	require.Len(t, recorder.messages, 1)
	msg := recorder.messages[0]
	require.Equal(t, bob.Email, msg.To)
	require.Contains(t, msg.Subject, "Roadmap")
	require.Contains(t, msg.Body, "Write docs")
	require.Contains(t, msg.Body, "Alice")
	require.Contains(t, msg.Body, "HIGH")
}

func TestUpdateAssignee_AssigneeNotFound(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	project := seedProject(t, db, "Roadmap", alice)

	recorder := &recorderNotifier{}
	svc := NewTaskService(db, recorder, false)
	task, err := svc.CreateTask(alice, models.Task{Name: "Write docs"}, project.ID)
	require.NoError(t, err)

	missing := "no-such-user"
	_, err = svc.UpdateAssignee(task.ID, &missing)
	require.ErrorIs(t, err, apperr.ErrUserNotFound)
	require.Contains(t, err.Error(), "assignee not found")

	// Task unchanged, nothing sent
	reloaded, err := svc.GetTask(task.ID)
	require.NoError(t, err)
	require.Nil(t, reloaded.AssigneeID)
	require.Empty(t, recorder.messages)
}

func TestUpdateAssignee_ClearWithoutNotification(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	bob := seedUser(t, db, "bob@x.com", "Bob", "Barker")
	project := seedProject(t, db, "Roadmap", alice)

	recorder := &recorderNotifier{}
	svc := NewTaskService(db, recorder, false)
	task, err := svc.CreateTask(alice, models.Task{Name: "Write docs"}, project.ID)
	require.NoError(t, err)

	_, err = svc.UpdateAssignee(task.ID, &bob.ID)
	require.NoError(t, err)
	recorder.messages = nil

	updated, err := svc.UpdateAssignee(task.ID, nil)
	require.NoError(t, err)
	require.Nil(t, updated.AssigneeID)
	require.Empty(t, recorder.messages)
}

func TestUpdateAssignee_MembershipEnforced(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	bob := seedUser(t, db, "bob@x.com", "Bob", "Barker")
	project := seedProject(t, db, "Roadmap", alice)

	recorder := &recorderNotifier{}
	svc := NewTaskService(db, recorder, true)
	task, err := svc.CreateTask(alice, models.Task{Name: "Write docs"}, project.ID)
	require.NoError(t, err)

	// Bob has no connection to the project
	_, err = svc.UpdateAssignee(task.ID, &bob.ID)
	require.ErrorIs(t, err, apperr.ErrInvalidMembership)
	require.Empty(t, recorder.messages)

	// Once a member, assignment goes through
	membership := NewMembershipService(db, &recorderNotifier{})
	_, err = membership.UpsertConnection(bob.Email, project.ID, models.RoleMember)
	require.NoError(t, err)

	updated, err := svc.UpdateAssignee(task.ID, &bob.ID)
	require.NoError(t, err)
	require.Equal(t, bob.ID, *updated.AssigneeID)
	require.Len(t, recorder.messages, 1)
}

func TestDeleteTask(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	project := seedProject(t, db, "Roadmap", alice)

	svc := NewTaskService(db, &recorderNotifier{}, false)
	task, err := svc.CreateTask(alice, models.Task{Name: "Write docs"}, project.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(task.ID))

	_, err = svc.GetTask(task.ID)
	require.ErrorIs(t, err, apperr.ErrTaskNotFound)

	require.ErrorIs(t, svc.DeleteTask(task.ID), apperr.ErrTaskNotFound)
}

func TestListTasks(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@x.com", "Alice", "Anders")
	roadmap := seedProject(t, db, "Roadmap", alice)
	backlog := seedProject(t, db, "Backlog", alice)

	svc := NewTaskService(db, &recorderNotifier{}, false)
	for i := 0; i < 2; i++ {
		_, err := svc.CreateTask(alice, models.Task{Name: "task"}, roadmap.ID)
		require.NoError(t, err)
	}
	_, err := svc.CreateTask(alice, models.Task{Name: "other"}, backlog.ID)
	require.NoError(t, err)

	tasks, err := svc.ListTasks(roadmap.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
}
