package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/offmenu/offmenu/pkg/idx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTaskRequest = errors.New("invalid task request")
	ErrUpdateNotFound     = errors.New("task update not found")
)

type TaskService struct {
	Store store.Store
}

// requireMember resolves the caller's membership in a project.
// Non-members get ErrProjectNotFound so they can't tell a project they
// were kicked out of from one that never existed.
func (s *TaskService) requireMember(ctx context.Context, userID, projectID string) (domain.Membership, error) {
	m, err := s.Store.Memberships().GetMembership(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrProjectNotFound
		}
		return domain.Membership{}, err
	}
	return m, nil
}

func (s *TaskService) requireAdmin(ctx context.Context, userID, projectID string) error {
	m, err := s.requireMember(ctx, userID, projectID)
	if err != nil {
		return err
	}
	if m.Role != domain.RoleAdmin {
		return ErrNotProjectAdmin
	}
	return nil
}

// resolveTask loads a task and checks the caller is a member of its
// project. Task-scoped routes all come through here.
func (s *TaskService) resolveTask(ctx context.Context, userID, taskID string) (domain.Task, domain.Membership, error) {
	task, err := s.Store.Tasks().GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, domain.Membership{}, ErrTaskNotFound
		}
		return domain.Task{}, domain.Membership{}, err
	}

	m, err := s.requireMember(ctx, userID, task.ProjectID)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			// Hide the task from non-members entirely.
			return domain.Task{}, domain.Membership{}, ErrTaskNotFound
		}
		return domain.Task{}, domain.Membership{}, err
	}
	return task, m, nil
}

// Board returns the project's tasks grouped by status, each card
// decorated with its assignee, comment count, and pending-update flag.
func (s *TaskService) Board(ctx context.Context, userID, projectID string) (domain.Board, error) {
	if _, err := s.requireMember(ctx, userID, projectID); err != nil {
		return domain.Board{}, err
	}

	tasks, err := s.Store.Tasks().ListTasksForProject(ctx, projectID)
	if err != nil {
		return domain.Board{}, err
	}

	var board domain.Board
	// Assignees repeat across cards; fetch each user once.
	assignees := make(map[string]*domain.AssigneeSummary)

	for _, task := range tasks {
		detailed, err := s.decorate(ctx, task, assignees)
		if err != nil {
			return domain.Board{}, err
		}

		switch task.Status {
		case domain.StatusInProgress:
			board.InProgress = append(board.InProgress, detailed)
		case domain.StatusUpNext:
			board.UpNext = append(board.UpNext, detailed)
		case domain.StatusBacklog:
			board.Backlog = append(board.Backlog, detailed)
		case domain.StatusCompleted:
			board.Completed = append(board.Completed, detailed)
		}
	}
	return board, nil
}

func (s *TaskService) decorate(
	ctx context.Context,
	task domain.Task,
	assignees map[string]*domain.AssigneeSummary,
) (domain.TaskWithDetails, error) {
	detailed := domain.TaskWithDetails{Task: task}

	if task.AssigneeID != "" {
		summary, ok := assignees[task.AssigneeID]
		if !ok {
			user, err := s.Store.Users().GetUserByID(ctx, task.AssigneeID)
			switch {
			case errors.Is(err, store.ErrNotFound):
				summary = nil // deleted account, card renders unassigned
			case err != nil:
				return domain.TaskWithDetails{}, err
			default:
				summary = &domain.AssigneeSummary{
					ID:       user.ID,
					Email:    user.Email,
					FullName: user.FullName,
				}
			}
			assignees[task.AssigneeID] = summary
		}
		detailed.Assignee = summary
	}

	count, err := s.Store.TaskComments().CountTaskComments(ctx, task.ID)
	if err != nil {
		return domain.TaskWithDetails{}, err
	}
	detailed.CommentsCount = count

	pending, err := s.Store.TaskUpdates().HasPendingUpdate(ctx, task.ID)
	if err != nil {
		return domain.TaskWithDetails{}, err
	}
	detailed.HasPendingUpdate = pending

	return detailed, nil
}

// Create adds a task to the bottom of a status column. Admin only.
func (s *TaskService) Create(
	ctx context.Context,
	userID, projectID, title, description, status, assigneeID string,
) (domain.Task, error) {
	log := slogx.FromContext(ctx)

	if title == "" {
		return domain.Task{}, ErrInvalidTaskRequest
	}
	if status == "" {
		status = domain.StatusBacklog
	}
	if !domain.ValidStatus(status) {
		return domain.Task{}, ErrInvalidTaskRequest
	}

	if err := s.requireAdmin(ctx, userID, projectID); err != nil {
		return domain.Task{}, err
	}

	if assigneeID != "" {
		// Only members can be assigned.
		if _, err := s.Store.Memberships().GetMembership(ctx, projectID, assigneeID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Task{}, ErrInvalidTaskRequest
			}
			return domain.Task{}, err
		}
	}

	column, err := s.Store.Tasks().ListTasksByStatus(ctx, projectID, status)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          idx.New().String(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      status,
		AssigneeID:  assigneeID,
		Position:    len(column),
	}
	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		log.Error("failed to create task", slog.Any("error", err))
		return domain.Task{}, err
	}

	log.Info("task created",
		slog.String("task_id", task.ID),
		slog.String("project_id", projectID),
		slog.String("status", status),
	)
	return task, nil
}

// Get returns a task with its card details. Member only.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (domain.TaskWithDetails, error) {
	task, _, err := s.resolveTask(ctx, userID, taskID)
	if err != nil {
		return domain.TaskWithDetails{}, err
	}
	return s.decorate(ctx, task, make(map[string]*domain.AssigneeSummary))
}

// Move places a task at a position in a status column and renumbers the
// affected columns so positions stay contiguous from zero. Drag-drop
// reordering maps straight onto this.
func (s *TaskService) Move(ctx context.Context, userID, taskID, status string, position int) error {
	log := slogx.FromContext(ctx)

	if !domain.ValidStatus(status) || position < 0 {
		return ErrInvalidTaskRequest
	}

	task, _, err := s.resolveTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		dest, err := tx.Tasks().ListTasksByStatus(ctx, task.ProjectID, status)
		if err != nil {
			return err
		}

		// Take the moving task out of whichever column it's in.
		dest = removeTask(dest, task.ID)
		if position > len(dest) {
			position = len(dest)
		}

		// Splice it into its new slot and renumber the column.
		dest = append(dest, domain.Task{})
		copy(dest[position+1:], dest[position:])
		dest[position] = task

		for i, t := range dest {
			newStatus := status
			if t.ID != task.ID {
				newStatus = t.Status
			}
			if t.ID == task.ID || t.Position != i {
				if err := tx.Tasks().UpdateTaskPlacement(ctx, t.ID, newStatus, i); err != nil {
					return err
				}
			}
		}

		// Close the gap left behind in the source column.
		if task.Status != status {
			source, err := tx.Tasks().ListTasksByStatus(ctx, task.ProjectID, task.Status)
			if err != nil {
				return err
			}
			source = removeTask(source, task.ID)
			for i, t := range source {
				if t.Position != i {
					if err := tx.Tasks().UpdateTaskPlacement(ctx, t.ID, t.Status, i); err != nil {
						return err
					}
				}
			}
		}

		log.Debug("task moved",
			slog.String("task_id", task.ID),
			slog.String("status", status),
			slog.Int("position", position),
		)
		return nil
	})
}

func removeTask(tasks []domain.Task, id string) []domain.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Delete removes a task. Admin only; comments and updates cascade.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	log := slogx.FromContext(ctx)

	task, _, err := s.resolveTask(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if err := s.requireAdmin(ctx, userID, task.ProjectID); err != nil {
		return err
	}

	if err := s.Store.Tasks().DeleteTask(ctx, taskID); err != nil {
		log.Error("failed to delete task", slog.Any("error", err))
		return err
	}

	log.Info("task deleted",
		slog.String("task_id", taskID),
		slog.String("project_id", task.ProjectID),
	)
	return nil
}

// Comment adds a member's comment to a task.
func (s *TaskService) Comment(ctx context.Context, userID, taskID, content string) (domain.TaskComment, error) {
	if content == "" {
		return domain.TaskComment{}, ErrInvalidTaskRequest
	}

	if _, _, err := s.resolveTask(ctx, userID, taskID); err != nil {
		return domain.TaskComment{}, err
	}

	comment := domain.TaskComment{
		ID:      idx.New().String(),
		TaskID:  taskID,
		UserID:  userID,
		Content: content,
	}
	if err := s.Store.TaskComments().CreateTaskComment(ctx, comment); err != nil {
		return domain.TaskComment{}, err
	}
	return comment, nil
}

// ListComments returns a task's comments, oldest first.
func (s *TaskService) ListComments(ctx context.Context, userID, taskID string) ([]domain.TaskComment, error) {
	if _, _, err := s.resolveTask(ctx, userID, taskID); err != nil {
		return nil, err
	}
	return s.Store.TaskComments().ListTaskComments(ctx, taskID)
}

// SubmitUpdate files a deliverable on a task for admin review.
func (s *TaskService) SubmitUpdate(ctx context.Context, userID, taskID, content string) (domain.TaskUpdate, error) {
	if content == "" {
		return domain.TaskUpdate{}, ErrInvalidTaskRequest
	}

	if _, _, err := s.resolveTask(ctx, userID, taskID); err != nil {
		return domain.TaskUpdate{}, err
	}

	update := domain.TaskUpdate{
		ID:      idx.New().String(),
		TaskID:  taskID,
		UserID:  userID,
		Content: content,
		Status:  domain.UpdateWaiting,
	}
	if err := s.Store.TaskUpdates().CreateTaskUpdate(ctx, update); err != nil {
		return domain.TaskUpdate{}, err
	}

	slogx.FromContext(ctx).Info("task update submitted",
		slog.String("update_id", update.ID),
		slog.String("task_id", taskID),
	)
	return update, nil
}

// ResolveUpdate approves or declines a waiting update. Admin only.
// Approval completes the task.
func (s *TaskService) ResolveUpdate(ctx context.Context, userID, updateID string, approve bool) error {
	log := slogx.FromContext(ctx)

	update, err := s.Store.TaskUpdates().GetTaskUpdateByID(ctx, updateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUpdateNotFound
		}
		return err
	}

	task, _, err := s.resolveTask(ctx, userID, update.TaskID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return ErrUpdateNotFound
		}
		return err
	}
	if err := s.requireAdmin(ctx, userID, task.ProjectID); err != nil {
		return err
	}

	status := domain.UpdateDeclined
	if approve {
		status = domain.UpdateApproved
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.TaskUpdates().ResolveTaskUpdate(ctx, updateID, status); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUpdateNotFound
			}
			return err
		}
		if approve {
			if err := tx.Tasks().SetTaskStatus(ctx, task.ID, domain.StatusCompleted); err != nil {
				return err
			}
		}

		log.Info("task update resolved",
			slog.String("update_id", updateID),
			slog.String("task_id", task.ID),
			slog.String("status", status),
		)
		return nil
	})
}
