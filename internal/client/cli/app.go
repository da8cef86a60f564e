// Package cli is the interactive terminal frontend for TaskKeeper. It
// drives the HTTP API client through a small read-eval-print loop.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/andrejsm/taskkeeper/internal/client/api"
	"github.com/andrejsm/taskkeeper/internal/client/config"
)

// apiService is the surface the CLI needs from the API client. The real
// *api.Client satisfies it; tests provide a stub.
type apiService interface {
	Register(ctx context.Context, name, email, password, confirmPassword string) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.User, error)
	Logout()
	Tasks(ctx context.Context, status string) ([]api.Task, error)
	AddTask(ctx context.Context, title, description string) (*api.Task, error)
	EditTask(ctx context.Context, id, status string) (*api.Task, error)
	DeleteTask(ctx context.Context, id string) error
	AttachFile(ctx context.Context, taskID, fileName string, data []byte) (*api.Attachment, error)
	Attachments(ctx context.Context, taskID string) ([]api.Attachment, error)
}

type App struct {
	config    *config.Config
	api       apiService
	reader    *bufio.Reader
	userEmail string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
