package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/offmenu/offmenu/internal/api/domain"
	"github.com/offmenu/offmenu/pkg/dashsdk"
	"github.com/offmenu/offmenu/pkg/httpx"
)

// maxBodyBytes caps request bodies. Nothing this API accepts is large.
const maxBodyBytes = 1 << 20

// readJSON decodes the request body into dst. On failure it writes a
// 400 and returns false; the handler should just return.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, dashsdk.ErrorResponse{
			Error:   dashsdk.ErrorCodeInvalidRequest,
			Details: "invalid JSON body",
		})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	httpx.WriteJSON(w, status, dashsdk.ErrorResponse{
		Error:   code,
		Details: details,
	})
}

func toUser(u domain.User) dashsdk.User {
	return dashsdk.User{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
	}
}

func toMembership(m domain.Membership) dashsdk.Membership {
	return dashsdk.Membership{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

func toProject(p domain.ProjectWithRole) dashsdk.Project {
	return dashsdk.Project{
		ID:        p.ID,
		Name:      p.Name,
		Role:      p.MemberRole,
		CreatedAt: p.CreatedAt,
	}
}

// TaskResponse is the wire form of a task card.
type TaskResponse struct {
	ID               string                   `json:"id"`
	ProjectID        string                   `json:"project_id"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description,omitempty"`
	Status           string                   `json:"status"`
	Position         int                      `json:"position"`
	Assignee         *AssigneeSummaryResponse `json:"assignee,omitempty"`
	CommentsCount    int                      `json:"comments_count"`
	HasPendingUpdate bool                     `json:"has_pending_update"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// AssigneeSummaryResponse is the slim user view on a task card.
type AssigneeSummaryResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

func toTask(t domain.TaskWithDetails) TaskResponse {
	resp := TaskResponse{
		ID:               t.ID,
		ProjectID:        t.ProjectID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           t.Status,
		Position:         t.Position,
		CommentsCount:    t.CommentsCount,
		HasPendingUpdate: t.HasPendingUpdate,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
	if t.Assignee != nil {
		resp.Assignee = &AssigneeSummaryResponse{
			ID:       t.Assignee.ID,
			Email:    t.Assignee.Email,
			FullName: t.Assignee.FullName,
		}
	}
	return resp
}

func toTasks(tasks []domain.TaskWithDetails) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTask(t))
	}
	return out
}
