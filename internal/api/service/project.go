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

// ErrProjectNotFound is returned both when a project doesn't exist and
// when the caller isn't a member. Outsiders can't probe for projects.
var ErrProjectNotFound = errors.New("project not found")

type ProjectService struct {
	Store store.Store
}

// Create makes a new project with the caller as its first admin.
func (s *ProjectService) Create(ctx context.Context, callerID, name string) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	if name == "" {
		return domain.Project{}, errors.New("project name is required")
	}

	project := domain.Project{
		ID:   idx.New().String(),
		Name: name,
	}
	membership := domain.Membership{
		ID:        idx.New().String(),
		ProjectID: project.ID,
		UserID:    callerID,
		Role:      domain.RoleAdmin,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().CreateProject(ctx, project); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, membership)
	})
	if err != nil {
		log.Error("failed to create project", slog.Any("error", err))
		return domain.Project{}, err
	}

	log.Info("project created",
		slog.String("project_id", project.ID),
		slog.String("owner_id", callerID),
	)
	return project, nil
}

// GetForMember returns the project and the caller's role in it.
// Non-members get the same not-found as a missing project.
func (s *ProjectService) GetForMember(ctx context.Context, userID, projectID string) (domain.ProjectWithRole, error) {
	membership, err := s.Store.Memberships().GetMembership(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ProjectWithRole{}, ErrProjectNotFound
		}
		return domain.ProjectWithRole{}, err
	}

	project, err := s.Store.Projects().GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ProjectWithRole{}, ErrProjectNotFound
		}
		return domain.ProjectWithRole{}, err
	}

	return domain.ProjectWithRole{Project: project, MemberRole: membership.Role}, nil
}

// ListForMember returns the caller's projects with their role in each.
func (s *ProjectService) ListForMember(ctx context.Context, userID string) ([]domain.ProjectWithRole, error) {
	return s.Store.Projects().ListProjectsForUser(ctx, userID)
}

// Memberships returns the caller's membership rows.
func (s *ProjectService) Memberships(ctx context.Context, userID string) ([]domain.Membership, error) {
	return s.Store.Memberships().ListMembershipsForUser(ctx, userID)
}
