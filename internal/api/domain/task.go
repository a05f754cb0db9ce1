package domain

import "time"

// Task statuses, in board order.
const (
	StatusInProgress = "in_progress"
	StatusUpNext     = "up_next"
	StatusBacklog    = "backlog"
	StatusCompleted  = "completed"
)

// ValidStatus reports whether s is a known task status.
func ValidStatus(s string) bool {
	switch s {
	case StatusInProgress, StatusUpNext, StatusBacklog, StatusCompleted:
		return true
	}
	return false
}

// Task is a unit of work on a project board. Position orders tasks
// within their status column, contiguous from zero.
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Status      string
	AssigneeID  string // empty when unassigned
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssigneeSummary is the slim user view rendered on task cards.
type AssigneeSummary struct {
	ID       string
	Email    string
	FullName string
}

// TaskWithDetails decorates a task with the card metadata the board
// shows alongside it.
type TaskWithDetails struct {
	Task

	Assignee         *AssigneeSummary
	CommentsCount    int
	HasPendingUpdate bool
}

// Board groups a project's tasks by status, each column ordered by
// position.
type Board struct {
	InProgress []TaskWithDetails
	UpNext     []TaskWithDetails
	Backlog    []TaskWithDetails
	Completed  []TaskWithDetails
}

// ActiveCount is the number the dashboard header shows: in-progress
// plus up-next tasks.
func (b Board) ActiveCount() int {
	return len(b.InProgress) + len(b.UpNext)
}

// TaskComment is a member's comment on a task.
type TaskComment struct {
	ID        string
	TaskID    string
	UserID    string
	Content   string
	CreatedAt time.Time
}

// TaskUpdate statuses.
const (
	UpdateWaiting  = "waiting"
	UpdateApproved = "approved"
	UpdateDeclined = "declined"
)

// TaskUpdate is a designer's submitted deliverable awaiting an admin's
// review. Approving an update completes its task.
type TaskUpdate struct {
	ID        string
	TaskID    string
	UserID    string
	Content   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
