package service

import (
	"context"
	"strings"
	"time"

	"github.com/backend101/tasks-api/internal/models"
	"github.com/backend101/tasks-api/internal/repository"
)

// TaskService sits between the HTTP layer and the repository. Required-field
// validation happens at the HTTP boundary; normalization lives here.
type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

func (s *TaskService) Create(ctx context.Context, title string, done bool) (*models.Task, error) {
	now := time.Now()
	task := &models.Task{
		Title:     strings.TrimSpace(title),
		Done:      done,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	return s.repo.List(ctx)
}

// Update fully replaces the title and done flag of the task with the given
// id. Partial updates are not supported at this layer.
func (s *TaskService) Update(ctx context.Context, id int64, title string, done bool) (*models.Task, error) {
	task := &models.Task{
		ID:    id,
		Title: strings.TrimSpace(title),
		Done:  done,
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
