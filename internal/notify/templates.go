package notify

import (
	"fmt"

	"workhub-api/internal/models"
)

const companyName = "WorkHub"

// ProjectAdditionEmail notifies a user that they were added to a project,
// addressed from the project owner.
func ProjectAdditionEmail(addedUser, projectOwner models.User, project models.Project) Message {
	subject := fmt.Sprintf("[%s] You've been added to project: %s", companyName, project.Name)

	body := fmt.Sprintf(`Dear %s,

You have been added to the project '%s' by %s %s.

Project Details:
- Name: %s
- Description: %s

You can now access the project and start collaborating with the team.

Best regards,
%s Team`,
		addedUser.FirstName,
		project.Name,
		projectOwner.FirstName,
		projectOwner.LastName,
		project.Name,
		project.Description,
		companyName)

	return Message{To: addedUser.Email, Subject: subject, Body: body}
}

// ProjectRemovalEmail notifies a user that their project access was removed.
func ProjectRemovalEmail(removedUser, projectOwner models.User, project models.Project) Message {
	subject := fmt.Sprintf("[%s] Your access to project '%s' has been removed", companyName, project.Name)

	body := fmt.Sprintf(`Dear %s,

Your access to the project '%s' has been removed by %s %s.

If you believe this is a mistake, please contact the project owner.

Best regards,
%s Team`,
		removedUser.FirstName,
		project.Name,
		projectOwner.FirstName,
		projectOwner.LastName,
		companyName)

	return Message{To: removedUser.Email, Subject: subject, Body: body}
}

// ProjectCreationEmail confirms to the creator that their project exists.
func ProjectCreationEmail(creator models.User, project models.Project) Message {
	subject := fmt.Sprintf("[%s] Project created: %s", companyName, project.Name)

	body := fmt.Sprintf(`Dear %s,

Your project '%s' has been created successfully.

Project Details:
- Name: %s
- Description: %s

You have been assigned the OWNER role.

Best regards,
%s Team`,
		creator.FirstName,
		project.Name,
		project.Name,
		project.Description,
		companyName)

	return Message{To: creator.Email, Subject: subject, Body: body}
}

// TaskAssignmentEmail notifies a user that a task was assigned to them,
// addressed from the user who reported the task.
func TaskAssignmentEmail(assignedUser, assignedBy models.User, task models.Task, project models.Project) Message {
	subject := fmt.Sprintf("[%s] New task assigned to you in project: %s", companyName, project.Name)

	deadline := "not set"
	if task.Deadline != nil {
		deadline = task.Deadline.Format("2006-01-02 15:04")
	}

	body := fmt.Sprintf(`Dear %s,

A new task has been assigned to you by %s %s in the project '%s'.

Task Details:
- Name: %s
- Description: %s
- Priority: %s
- Deadline: %s

Please review the task details and begin working on it at your earliest convenience.

Best regards,
%s Team`,
		assignedUser.FirstName,
		assignedBy.FirstName,
		assignedBy.LastName,
		project.Name,
		task.Name,
		task.Description,
		task.Priority,
		deadline,
		companyName)

	return Message{To: assignedUser.Email, Subject: subject, Body: body}
}
