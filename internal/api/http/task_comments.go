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

// CommentResponse is the wire form of a task comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentsResponse lists a task's comments, oldest first.
type CommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// CommentCreateRequest adds a comment to a task.
type CommentCreateRequest struct {
	Content string `json:"content"`
}

func toComment(c domain.TaskComment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		TaskID:    c.TaskID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

type TaskCommentsHandler struct {
	TaskService *service.TaskService
}

// HandleList godoc
//
//	@Summary		List Task Comments Endpoint
//	@Description	Return a task's comments, oldest first. Members only.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Task ID"
//	@Success		200	{object}	CommentsResponse		"comments"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404	{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500	{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/tasks/{id}/comments [get].
func (h *TaskCommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	comments, err := h.TaskService.ListComments(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "task not found")
			return
		}
		log.Error("failed to list comments", "err", err)
		writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to list comments")
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toComment(c))
	}
	httpx.WriteJSON(w, http.StatusOK, CommentsResponse{Comments: out})
}

// HandleCreate godoc
//
//	@Summary		Create Task Comment Endpoint
//	@Description	Add a comment to a task. Members only.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Task ID"
//	@Param			request	body		CommentCreateRequest	true	"Comment content"
//	@Success		200		{object}	CommentResponse			"created comment"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		401		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		404		{object}	dashsdk.ErrorResponse	"error, details"
//	@Failure		500		{object}	dashsdk.ErrorResponse	"error, details"
//	@Router			/v1/tasks/{id}/comments [post].
func (h *TaskCommentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CommentCreateRequest
	if !readJSON(w, r, &req) {
		return
	}

	comment, err := h.TaskService.Comment(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTaskRequest):
			writeError(w, http.StatusBadRequest, dashsdk.ErrorCodeInvalidRequest, "content is required")
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound, "task not found")
		default:
			log.Error("failed to create comment", "err", err)
			writeError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError, "failed to create comment")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toComment(comment))
}
