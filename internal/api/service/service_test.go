package service

import (
	"context"
	"testing"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/store"
	"github.com/offmenu/offmenu/internal/api/store/drivers/sqlite"
	"github.com/offmenu/offmenu/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Shared fixtures for the service tests: an in-memory store with
// migrations applied, plus seed helpers that respect the foreign keys.

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()

	ctx := context.Background()
	u := domain.User{ID: idx.New().String(), Email: email}
	require.NoError(t, st.Users().CreateUser(ctx, u))
	return u
}

func seedProject(t *testing.T, st store.Store, name string) domain.Project {
	t.Helper()

	ctx := context.Background()
	p := domain.Project{ID: idx.New().String(), Name: name}
	require.NoError(t, st.Projects().CreateProject(ctx, p))
	return p
}

func seedMembership(t *testing.T, st store.Store, projectID, userID, role string) domain.Membership {
	t.Helper()

	ctx := context.Background()
	m := domain.Membership{
		ID:        idx.New().String(),
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	}
	require.NoError(t, st.Memberships().CreateMembership(ctx, m))
	return m
}
