package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backend101/tasks-api/internal/models"
)

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	first := &models.Task{Title: "buy milk"}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := &models.Task{Title: "walk dog"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)
}

func TestGetByIDRoundTrip(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	task := &models.Task{Title: "buy milk", Done: true}
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "buy milk", got.Title)
	assert.True(t, got.Done)
}

func TestGetByIDReturnsCopy(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	task := &models.Task{Title: "buy milk"}
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", again.Title)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewMemoryTaskRepository()

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListInsertionOrder(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		require.NoError(t, repo.Create(ctx, &models.Task{Title: title}))
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, titles[i], task.Title)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	repo := NewMemoryTaskRepository()

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestUpdateReplacesFieldsKeepsID(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	task := &models.Task{Title: "buy milk"}
	require.NoError(t, repo.Create(ctx, task))
	id := task.ID

	updated := &models.Task{ID: id, Title: "buy oat milk", Done: true}
	require.NoError(t, repo.Update(ctx, updated))
	assert.Equal(t, id, updated.ID)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", got.Title)
	assert.True(t, got.Done)
}

func TestUpdateNotFound(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	err := repo.Update(ctx, &models.Task{ID: 42, Title: "ghost"})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDeleteRemovesTask(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	task := &models.Task{Title: "buy milk"}
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDeleteNotFoundDoesNotMutate(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Task{Title: "buy milk"}))

	err := repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestIDsNeverReusedAfterDelete(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	first := &models.Task{Title: "first"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := &models.Task{Title: "second"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID)
}

func TestConcurrentCreates(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task := &models.Task{Title: "concurrent"}
			if err := repo.Create(ctx, task); err == nil {
				ids <- task.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, n)
}
