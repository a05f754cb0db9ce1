package http

import (
	"errors"
	"net/http"

	"github.com/offmenu/offmenu/internal/api/service"
	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

// BoardResponse groups a project's tasks by status column.
type BoardResponse struct {
	InProgress  []TaskResponse `json:"in_progress"`
	UpNext      []TaskResponse `json:"up_next"`
	Backlog     []TaskResponse `json:"backlog"`
	Completed   []TaskResponse `json:"completed"`
	ActiveCount int            `json:"active_count"`
}

type BoardHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Project Board Endpoint
//	@Description	Return the project's tasks grouped by status, each column ordered
//	@Description	by position. Members only; non-members get 404.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Project ID"
//	@Success		200	{object}	BoardResponse			"in_progress, up_next, backlog, completed, active_count"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/projects/{id}/tasks [get].
func (h *BoardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	board, err := h.TaskService.Board(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "project not found")
			return
		}
		log.Error("failed to load board", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to load board")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, BoardResponse{
		InProgress:  toTasks(board.InProgress),
		UpNext:      toTasks(board.UpNext),
		Backlog:     toTasks(board.Backlog),
		Completed:   toTasks(board.Completed),
		ActiveCount: board.ActiveCount(),
	})
}

// TaskCreateRequest describes a new task. Status defaults to backlog.
type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	AssigneeID  string `json:"assignee_id,omitempty"`
}

type TaskCreateHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Create Task Endpoint
//	@Description	Add a task to the bottom of a status column. Project admins only.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Project ID"
//	@Param			request	body		TaskCreateRequest	true	"Title, optional description/status/assignee"
//	@Success		200		{object}	TaskResponse		"created task"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		401		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		403		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500		{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/projects/{id}/tasks [post].
func (h *TaskCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req TaskCreateRequest
	if !readJSON(w, r, &req) {
		return
	}

	task, err := h.TaskService.Create(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"),
		req.Title, req.Description, req.Status, req.AssigneeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTaskRequest):
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "invalid task parameters")
		case errors.Is(err, service.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "project not found")
		case errors.Is(err, service.ErrNotProjectAdmin):
			writeError(w, http.StatusForbidden, dashsdk.ErrorCodeForbidden, "only project admins can create tasks")
		default:
			log.Error("failed to create task", "err", err)
			writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to create task")
		}
		return
	}

	detailed, err := h.TaskService.Get(ctx, httpx.UserIDFromCtx(ctx), task.ID)
	if err != nil {
		log.Error("failed to fetch created task", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to fetch created task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTask(detailed))
}

type TaskGetHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Get Task Endpoint
//	@Description	Return a task with its card details. Members only.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Task ID"
//	@Success		200	{object}	TaskResponse			"task"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/tasks/{id} [get].
func (h *TaskGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	task, err := h.TaskService.Get(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "task not found")
			return
		}
		log.Error("failed to fetch task", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to fetch task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTask(task))
}

// TaskMoveRequest places a task at a position in a status column.
type TaskMoveRequest struct {
	Status   string `json:"status"`
	Position int    `json:"position"`
}

type TaskMoveHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Move Task Endpoint
//	@Description	Move a task to a status column position. Both affected columns are
//	@Description	renumbered so positions stay contiguous from zero.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path	string			true	"Task ID"
//	@Param			request	body	TaskMoveRequest	true	"Destination status and position"
//	@Success		204		"task moved"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		401		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500		{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/tasks/{id}/move [post].
func (h *TaskMoveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req TaskMoveRequest
	if !readJSON(w, r, &req) {
		return
	}

	err := h.TaskService.Move(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), req.Status, req.Position)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTaskRequest):
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "invalid status or position")
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "task not found")
		default:
			log.Error("failed to move task", "err", err)
			writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to move task")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type TaskDeleteHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Delete Task Endpoint
//	@Description	Remove a task and its comments and updates. Project admins only.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Task ID"
//	@Success		204	"task deleted"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/tasks/{id} [delete].
func (h *TaskDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.TaskService.Delete(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "task not found")
		case errors.Is(err, service.ErrNotProjectAdmin):
			writeError(w, http.StatusForbidden, dashsdk.ErrorCodeForbidden, "only project admins can delete tasks")
		default:
			log.Error("failed to delete task", "err", err)
			writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to delete task")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
