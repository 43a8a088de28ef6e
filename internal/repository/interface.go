package repository

import (
	"context"
	"errors"

	"github.com/backend101/tasks-api/internal/models"
)

// ErrTaskNotFound is returned when no task exists with the requested id.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
}
