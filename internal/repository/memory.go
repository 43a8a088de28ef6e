package repository

import (
	"context"
	"sync"
	"time"

	"github.com/backend101/tasks-api/internal/models"
)

// MemoryTaskRepository holds all tasks in process memory. The id counter
// only ever increments, so an id is never reused after its task is deleted.
// All methods are safe for concurrent use.
type MemoryTaskRepository struct {
	mu     sync.RWMutex
	tasks  map[int64]*models.Task
	order  []int64
	nextID int64
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[int64]*models.Task),
	}
}

// Create assigns the next id and stores the task. The ID field of the
// passed task is overwritten with the assigned value.
func (r *MemoryTaskRepository) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	task.ID = r.nextID

	stored := *task
	r.tasks[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

// GetByID returns a copy of the stored task, so callers cannot mutate
// store-owned records without going through Update.
func (r *MemoryTaskRepository) GetByID(_ context.Context, id int64) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	task := *stored
	return &task, nil
}

// List returns all tasks in insertion order. The slice is never nil.
func (r *MemoryTaskRepository) List(_ context.Context) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(r.order))
	for _, id := range r.order {
		task := *r.tasks[id]
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

// Update replaces the title and done flag of the stored task with the same
// id. The id itself is immutable. On success the passed task is refreshed
// with the stored record.
func (r *MemoryTaskRepository) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tasks[task.ID]
	if !ok {
		return ErrTaskNotFound
	}
	stored.Title = task.Title
	stored.Done = task.Done
	stored.UpdatedAt = time.Now()
	*task = *stored
	return nil
}

func (r *MemoryTaskRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(r.tasks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
