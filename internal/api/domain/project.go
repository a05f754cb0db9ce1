package domain

import "time"

// Project is a workspace tasks and members hang off.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectWithRole is a project paired with the viewing member's role.
type ProjectWithRole struct {
	Project

	MemberRole string
}
