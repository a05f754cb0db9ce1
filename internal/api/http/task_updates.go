package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/internal/api/service"
	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/offmenu/offmenu/pkg/httpx"
	"github.com/offmenu/offmenu/pkg/slogx"
)

// UpdateResponse is the wire form of a submitted task update.
type UpdateResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateSubmitRequest files a deliverable on a task for review.
type UpdateSubmitRequest struct {
	Content string `json:"content"`
}

func toUpdate(u domain.TaskUpdate) UpdateResponse {
	return UpdateResponse{
		ID:        u.ID,
		TaskID:    u.TaskID,
		UserID:    u.UserID,
		Content:   u.Content,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

type TaskUpdateHandler struct {
	TaskService *service.TaskService
}

// HandleSubmit godoc
//
//	@Summary		Submit Task Update Endpoint
//	@Description	File a deliverable on a task for admin review. Members only.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Task ID"
//	@Param			request	body		UpdateSubmitRequest		true	"Update content"
//	@Success		200		{object}	UpdateResponse			"submitted update"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		401		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500		{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/tasks/{id}/updates [post].
func (h *TaskUpdateHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req UpdateSubmitRequest
	if !readJSON(w, r, &req) {
		return
	}

	update, err := h.TaskService.SubmitUpdate(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTaskRequest):
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "content is required")
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "task not found")
		default:
			log.Error("failed to submit update", "err", err)
			writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to submit update")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUpdate(update))
}

// HandleApprove godoc
//
//	@Summary		Approve Task Update Endpoint
//	@Description	Approve a waiting update and complete its task. Project admins only.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Update ID"
//	@Success		204	"update approved"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/updates/{id}/approve [post].
func (h *TaskUpdateHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, true)
}

// HandleDecline godoc
//
//	@Summary		Decline Task Update Endpoint
//	@Description	Decline a waiting update. The task keeps its status. Project admins only.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Update ID"
//	@Success		204	"update declined"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/updates/{id}/decline [post].
func (h *TaskUpdateHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, false)
}

func (h *TaskUpdateHandler) resolve(w http.ResponseWriter, r *http.Request, approve bool) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.TaskService.ResolveUpdate(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), approve)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUpdateNotFound):
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "update not found or already resolved")
		case errors.Is(err, service.ErrNotProjectAdmin):
			writeError(w, http.StatusForbidden, dashsdk.ErrorCodeForbidden, "only project admins can review updates")
		default:
			log.Error("failed to resolve update", "err", err)
			writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to resolve update")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
