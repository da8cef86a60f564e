// Package tasks persists task records. Every query is scoped to an owner:
// a row that exists but belongs to someone else is indistinguishable from
// a row that does not exist.
package tasks

import (
	"context"

	"github.com/andrejsm/taskkeeper/internal/server/models"
)

type Repository interface {
	// ListByUser returns the owner's live tasks, newest first. An empty
	// status means no filter.
	ListByUser(ctx context.Context, userID string, status string) ([]*models.Task, error)

	// Create inserts a new task for the owner.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// GetByIDForUser returns the owner's live task with the given id, or
	// common.ErrorNotFound.
	GetByIDForUser(ctx context.Context, id, userID string) (*models.Task, error)

	// UpdateStatus sets the status of the owner's live task and returns
	// the updated row, or common.ErrorNotFound.
	UpdateStatus(ctx context.Context, id, userID, status string) (*models.Task, error)

	// SoftDelete marks the owner's live task as deleted, or returns
	// common.ErrorNotFound.
	SoftDelete(ctx context.Context, id, userID string) error
}
