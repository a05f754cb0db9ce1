package http

import (
	"errors"
	"net/http"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/service"
	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

type MembershipsHandler struct {
	ProjectService *service.ProjectService
}

// ServeHTTP godoc
//
//	@Summary		List Memberships Endpoint
//	@Description	Return the caller's project memberships.
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dashsdk.MembershipsResponse	"memberships"
//	@Failure		401	{object}	dashsdk.ErrorResponse		"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse		"error, details"
//	@Router			/v1/memberships [get].
func (h *MembershipsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	memberships, err := h.ProjectService.Memberships(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		log.Error("failed to list memberships", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to list memberships")
		return
	}

	out := make([]dashsdk.Membership, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, toMembership(m))
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.MembershipsResponse{Memberships: out})
}

type ProjectListHandler struct {
	ProjectService *service.ProjectService
}

// ServeHTTP godoc
//
//	@Summary		List Projects Endpoint
//	@Description	Return the caller's projects with their role in each, newest first.
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dashsdk.ProjectsResponse	"projects"
//	@Failure		401	{object}	dashsdk.ErrorResponse		"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse		"error, details"
//	@Router			/v1/projects [get].
func (h *ProjectListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	projects, err := h.ProjectService.ListForMember(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		log.Error("failed to list projects", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to list projects")
		return
	}

	out := make([]dashsdk.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProject(p))
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.ProjectsResponse{Projects: out})
}

type ProjectCreateHandler struct {
	ProjectService *service.ProjectService
}

// ProjectCreateRequest names a new project.
type ProjectCreateRequest struct {
	Name string `json:"name"`
}

// ServeHTTP godoc
//
//	@Summary		Create Project Endpoint
//	@Description	Create a project with the caller as its first admin.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ProjectCreateRequest	true	"Project name"
//	@Success		200		{object}	dashsdk.Project			"id, name, role, created_at"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		401		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500		{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/projects [post].
func (h *ProjectCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req ProjectCreateRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "name is required")
		return
	}

	project, err := h.ProjectService.Create(ctx, httpx.UserIDFromCtx(ctx), req.Name)
	if err != nil {
		log.Error("failed to create project", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to create project")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dashsdk.Project{
		ID:        project.ID,
		Name:      project.Name,
		Role:      domain.RoleAdmin,
		CreatedAt: project.CreatedAt,
	})
}

type ProjectGetHandler struct {
	ProjectService *service.ProjectService
}

// ServeHTTP godoc
//
//	@Summary		Get Project Endpoint
//	@Description	Return a project and the caller's role in it. Non-members get 404.
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Project ID"
//	@Success		200	{object}	dashsdk.Project			"id, name, role, created_at"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/projects/{id} [get].
func (h *ProjectGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	project, err := h.ProjectService.GetForMember(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "project not found")
			return
		}
		log.Error("failed to fetch project", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to fetch project")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProject(project))
}
