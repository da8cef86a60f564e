// Package attachments persists the rows tying object-storage keys to
// tasks. Ownership checks happen one level up, against the task itself.
package attachments

import (
	"context"

	"github.com/andrejsm/taskkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, attachment *models.Attachment) (*models.Attachment, error)
	ListByTask(ctx context.Context, taskID string) ([]*models.Attachment, error)
}
