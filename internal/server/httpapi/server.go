// Package httpapi is the HTTP surface of the task server: the credential
// endpoints, the token gate and the task routes, all answering with one
// uniform response envelope.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/andrejsm/taskkeeper/internal/logging"
	"github.com/andrejsm/taskkeeper/internal/server/models"
	"github.com/andrejsm/taskkeeper/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// UserService is what the transport needs from the credential flows.
type UserService interface {
	Register(ctx context.Context, name, email, password, confirmPassword string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	FindActive(ctx context.Context, id string) (*models.User, error)
}

// TaskService is what the transport needs from the task flows.
type TaskService interface {
	List(ctx context.Context, userID, status string) ([]*models.Task, error)
	Create(ctx context.Context, userID, title, description string) (*models.Task, error)
	UpdateStatus(ctx context.Context, userID, taskID, status string) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
	AttachFile(ctx context.Context, userID, taskID, fileName string) (*services.AttachmentLink, error)
	ListAttachments(ctx context.Context, userID, taskID string) ([]*services.AttachmentLink, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	tasks     TaskService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us UserService, ts TaskService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}
}

// Routes builds the request mux. Exposed for tests.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.HandleFunc("GET /api/task/get-tasks", s.authenticate(s.handleGetTasks))
	mux.HandleFunc("POST /api/task/add-task", s.authenticate(s.handleAddTask))
	mux.HandleFunc("PATCH /api/task/edit-task/{id}", s.authenticate(s.handleEditTask))
	mux.HandleFunc("DELETE /api/task/delete-task/{id}", s.authenticate(s.handleDeleteTask))

	mux.HandleFunc("POST /api/task/{id}/attachments", s.authenticate(s.handleAddAttachment))
	mux.HandleFunc("GET /api/task/{id}/attachments", s.authenticate(s.handleListAttachments))

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, "OK", nil)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
