package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/andrejsm/taskkeeper/internal/common"
	"github.com/andrejsm/taskkeeper/internal/server/models"
	"github.com/andrejsm/taskkeeper/internal/server/services"
)

// Status carries the HTTP status code and a human-readable message inside
// every response body, success or failure.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Envelope is the single response shape used by every endpoint:
// {"status":{"code":...,"message":...},"data":...}. Data is omitted when
// there is no payload.
type Envelope struct {
	Status Status `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// UserView is the account shape that leaves the server. The password hash
// never appears here.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserView(u *models.User) *UserView {
	return &UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type TaskView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newTaskView(t *models.Task) *TaskView {
	return &TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// AttachmentView pairs an attachment row with its presigned URL. The URL
// is short-lived and must be used promptly.
type AttachmentView struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

func newAttachmentView(l *services.AttachmentLink) *AttachmentView {
	return &AttachmentView{
		ID:        l.Attachment.ID,
		FileName:  l.Attachment.FileName,
		URL:       l.URL,
		CreatedAt: l.Attachment.CreatedAt,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(Envelope{
		Status: Status{Code: code, Message: message},
		Data:   data,
	})
	if err != nil {
		s.logger.Error(context.Background(), "error encoding response", "error", err)
	}
}

// statusForError maps a service error to the HTTP status it travels as.
// Anything unrecognized is an internal error and must not leak its text.
func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, common.ErrorFieldsRequired),
		errors.Is(err, common.ErrorEmailPasswordRequired),
		errors.Is(err, common.ErrorPasswordMismatch),
		errors.Is(err, common.ErrorTitleRequired),
		errors.Is(err, common.ErrorInvalidStatus):
		return http.StatusBadRequest, true
	case errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusUnauthorized, true
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusForbidden, true
	case errors.Is(err, common.ErrorTaskNotFound), errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, common.ErrorEmailInUse), errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, true
	}
	return http.StatusInternalServerError, false
}

func (s *Server) writeError(r *http.Request, w http.ResponseWriter, err error) {
	code, known := statusForError(err)
	if !known {
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		s.writeJSON(w, code, "Internal server error", nil)
		return
	}
	s.writeJSON(w, code, capitalize(err.Error()), nil)
}

// capitalize upper-cases the first byte so sentinel texts read as
// sentences on the wire.
func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
