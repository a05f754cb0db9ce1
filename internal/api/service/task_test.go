package service

import (
	"context"
	"testing"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	st       store.Store
	svc      *TaskService
	admin    domain.User
	designer domain.User
	project  domain.Project
}

func newTaskFixture(t *testing.T) taskFixture {
	t.Helper()

	st := newTestStore(t)
	admin := seedUser(t, st, "admin@example.com")
	designer := seedUser(t, st, "designer@example.com")
	project := seedProject(t, st, "Menu Redesign")
	seedMembership(t, st, project.ID, admin.ID, domain.RoleAdmin)
	seedMembership(t, st, project.ID, designer.ID, domain.RoleDesigner)

	return taskFixture{
		st:       st,
		svc:      &TaskService{Store: st},
		admin:    admin,
		designer: designer,
		project:  project,
	}
}

// seedColumn creates n tasks in one status column and returns their ids
// in position order.
func (f taskFixture) seedColumn(t *testing.T, status string, titles ...string) []string {
	t.Helper()

	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		task, err := f.svc.Create(context.Background(), f.admin.ID, f.project.ID, title, "", status, "")
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}
	return ids
}

// columnIDs reads a column back and asserts positions are contiguous
// from zero before returning the ids in order.
func (f taskFixture) columnIDs(t *testing.T, status string) []string {
	t.Helper()

	tasks, err := f.st.Tasks().ListTasksByStatus(context.Background(), f.project.ID, status)
	require.NoError(t, err)

	ids := make([]string, 0, len(tasks))
	for i, task := range tasks {
		require.Equal(t, i, task.Position, "position gap at %s[%d]", status, i)
		ids = append(ids, task.ID)
	}
	return ids
}

func TestTaskCreate(t *testing.T) {
	t.Parallel()

	f := newTaskFixture(t)
	ctx := context.Background()

	t.Run("appends to the bottom of the column", func(t *testing.T) {
		first, err := f.svc.Create(ctx, f.admin.ID, f.project.ID, "Draft hero section", "", domain.StatusBacklog, "")
		require.NoError(t, err)
		require.Equal(t, 0, first.Position)

		second, err := f.svc.Create(ctx, f.admin.ID, f.project.ID, "Pick typefaces", "", domain.StatusBacklog, "")
		require.NoError(t, err)
		require.Equal(t, 1, second.Position)
	})

	t.Run("defaults to backlog", func(t *testing.T) {
		task, err := f.svc.Create(ctx, f.admin.ID, f.project.ID, "Audit colours", "", "", "")
		require.NoError(t, err)
		require.Equal(t, domain.StatusBacklog, task.Status)
	})

	t.Run("designer cannot create", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.designer.ID, f.project.ID, "Sneaky task", "", domain.StatusBacklog, "")
		require.ErrorIs(t, err, ErrNotProjectAdmin)
	})

	t.Run("assignee must be a member", func(t *testing.T) {
		outsider := seedUser(t, f.st, "outsider@example.com")
		_, err := f.svc.Create(ctx, f.admin.ID, f.project.ID, "Orphan task", "", domain.StatusBacklog, outsider.ID)
		require.ErrorIs(t, err, ErrInvalidTaskRequest)
	})

	t.Run("title and status validated", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.admin.ID, f.project.ID, "", "", domain.StatusBacklog, "")
		require.ErrorIs(t, err, ErrInvalidTaskRequest)

		_, err = f.svc.Create(ctx, f.admin.ID, f.project.ID, "Bad column", "", "archived", "")
		require.ErrorIs(t, err, ErrInvalidTaskRequest)
	})
}

func TestTaskMove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reorder within a column", func(t *testing.T) {
		f := newTaskFixture(t)
		ids := f.seedColumn(t, domain.StatusBacklog, "a", "b", "c", "d")

		// Move the last card to the top.
		require.NoError(t, f.svc.Move(ctx, f.designer.ID, ids[3], domain.StatusBacklog, 0))
		require.Equal(t, []string{ids[3], ids[0], ids[1], ids[2]}, f.columnIDs(t, domain.StatusBacklog))

		// And a middle card down one slot.
		require.NoError(t, f.svc.Move(ctx, f.designer.ID, ids[0], domain.StatusBacklog, 2))
		require.Equal(t, []string{ids[3], ids[1], ids[0], ids[2]}, f.columnIDs(t, domain.StatusBacklog))
	})

	t.Run("cross-column move closes the source gap", func(t *testing.T) {
		f := newTaskFixture(t)
		backlog := f.seedColumn(t, domain.StatusBacklog, "a", "b", "c")
		upNext := f.seedColumn(t, domain.StatusUpNext, "x", "y")

		require.NoError(t, f.svc.Move(ctx, f.designer.ID, backlog[1], domain.StatusUpNext, 1))

		require.Equal(t, []string{backlog[0], backlog[2]}, f.columnIDs(t, domain.StatusBacklog))
		require.Equal(t, []string{upNext[0], backlog[1], upNext[1]}, f.columnIDs(t, domain.StatusUpNext))
	})

	t.Run("oversized position clamps to the end", func(t *testing.T) {
		f := newTaskFixture(t)
		backlog := f.seedColumn(t, domain.StatusBacklog, "a")
		inProgress := f.seedColumn(t, domain.StatusInProgress, "x", "y")

		require.NoError(t, f.svc.Move(ctx, f.designer.ID, backlog[0], domain.StatusInProgress, 99))
		require.Equal(t, []string{inProgress[0], inProgress[1], backlog[0]}, f.columnIDs(t, domain.StatusInProgress))
	})

	t.Run("move into an empty column", func(t *testing.T) {
		f := newTaskFixture(t)
		backlog := f.seedColumn(t, domain.StatusBacklog, "a")

		require.NoError(t, f.svc.Move(ctx, f.designer.ID, backlog[0], domain.StatusCompleted, 0))
		require.Equal(t, []string{backlog[0]}, f.columnIDs(t, domain.StatusCompleted))
		require.Empty(t, f.columnIDs(t, domain.StatusBacklog))
	})

	t.Run("bad placement rejected", func(t *testing.T) {
		f := newTaskFixture(t)
		ids := f.seedColumn(t, domain.StatusBacklog, "a")

		require.ErrorIs(t, f.svc.Move(ctx, f.designer.ID, ids[0], "archived", 0), ErrInvalidTaskRequest)
		require.ErrorIs(t, f.svc.Move(ctx, f.designer.ID, ids[0], domain.StatusBacklog, -1), ErrInvalidTaskRequest)
	})

	t.Run("non-member cannot see the task", func(t *testing.T) {
		f := newTaskFixture(t)
		ids := f.seedColumn(t, domain.StatusBacklog, "a")
		outsider := seedUser(t, f.st, "outsider@example.com")

		require.ErrorIs(t, f.svc.Move(ctx, outsider.ID, ids[0], domain.StatusUpNext, 0), ErrTaskNotFound)
	})
}

func TestBoard(t *testing.T) {
	t.Parallel()

	f := newTaskFixture(t)
	ctx := context.Background()

	task, err := f.svc.Create(ctx, f.admin.ID, f.project.ID, "Draft hero section", "First pass", domain.StatusInProgress, f.designer.ID)
	require.NoError(t, err)
	f.seedColumn(t, domain.StatusBacklog, "Pick typefaces", "Audit colours")

	_, err = f.svc.Comment(ctx, f.designer.ID, task.ID, "Working on it")
	require.NoError(t, err)
	_, err = f.svc.SubmitUpdate(ctx, f.designer.ID, task.ID, "First draft attached")
	require.NoError(t, err)

	board, err := f.svc.Board(ctx, f.admin.ID, f.project.ID)
	require.NoError(t, err)
	require.Len(t, board.InProgress, 1)
	require.Len(t, board.Backlog, 2)
	require.Empty(t, board.UpNext)
	require.Empty(t, board.Completed)

	card := board.InProgress[0]
	require.Equal(t, task.ID, card.ID)
	require.NotNil(t, card.Assignee)
	require.Equal(t, f.designer.Email, card.Assignee.Email)
	require.Equal(t, 1, card.CommentsCount)
	require.True(t, card.HasPendingUpdate)

	_, err = f.svc.Board(ctx, seedUser(t, f.st, "outsider@example.com").ID, f.project.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestResolveUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	submit := func(t *testing.T, f taskFixture) (domain.Task, domain.TaskUpdate) {
		task, err := f.svc.Create(ctx, f.admin.ID, f.project.ID, "Draft hero section", "", domain.StatusInProgress, f.designer.ID)
		require.NoError(t, err)
		update, err := f.svc.SubmitUpdate(ctx, f.designer.ID, task.ID, "Done, see figma")
		require.NoError(t, err)
		require.Equal(t, domain.UpdateWaiting, update.Status)
		return task, update
	}

	t.Run("approval completes the task", func(t *testing.T) {
		f := newTaskFixture(t)
		task, update := submit(t, f)

		require.NoError(t, f.svc.ResolveUpdate(ctx, f.admin.ID, update.ID, true))

		stored, err := f.st.Tasks().GetTaskByID(ctx, task.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusCompleted, stored.Status)

		pending, err := f.st.TaskUpdates().HasPendingUpdate(ctx, task.ID)
		require.NoError(t, err)
		require.False(t, pending)
	})

	t.Run("decline leaves the task where it was", func(t *testing.T) {
		f := newTaskFixture(t)
		task, update := submit(t, f)

		require.NoError(t, f.svc.ResolveUpdate(ctx, f.admin.ID, update.ID, false))

		stored, err := f.st.Tasks().GetTaskByID(ctx, task.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusInProgress, stored.Status)
	})

	t.Run("an update resolves once", func(t *testing.T) {
		f := newTaskFixture(t)
		_, update := submit(t, f)

		require.NoError(t, f.svc.ResolveUpdate(ctx, f.admin.ID, update.ID, false))
		require.ErrorIs(t, f.svc.ResolveUpdate(ctx, f.admin.ID, update.ID, true), ErrUpdateNotFound)
	})

	t.Run("designer cannot resolve", func(t *testing.T) {
		f := newTaskFixture(t)
		_, update := submit(t, f)

		require.ErrorIs(t, f.svc.ResolveUpdate(ctx, f.designer.ID, update.ID, true), ErrNotProjectAdmin)
	})
}

func TestTaskDelete(t *testing.T) {
	t.Parallel()

	f := newTaskFixture(t)
	ctx := context.Background()
	ids := f.seedColumn(t, domain.StatusBacklog, "a", "b")

	require.ErrorIs(t, f.svc.Delete(ctx, f.designer.ID, ids[0]), ErrNotProjectAdmin)

	require.NoError(t, f.svc.Delete(ctx, f.admin.ID, ids[0]))
	_, err := f.svc.Get(ctx, f.admin.ID, ids[0])
	require.ErrorIs(t, err, ErrTaskNotFound)
}
