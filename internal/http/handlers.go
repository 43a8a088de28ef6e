package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/backend101/tasks-api/internal/middleware"
	"github.com/backend101/tasks-api/internal/models"
	"github.com/backend101/tasks-api/internal/repository"
	"github.com/backend101/tasks-api/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
	logger      *logrus.Logger
}

func NewTaskHandler(ts *service.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: ts,
		logger:      logger,
	}
}

// Request/response structures. Update uses pointers so a missing field can
// be told apart from a zero value.
type createTaskRequest struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type updateTaskRequest struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

type taskResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

func toTaskResponse(t *models.Task) taskResponse {
	return taskResponse{
		ID:    t.ID,
		Title: t.Title,
		Done:  t.Done,
	}
}

func toTaskResponses(tasks []*models.Task) []taskResponse {
	result := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = toTaskResponse(t)
	}
	return result
}

// taskID parses the {id} path segment. Non-integer ids fail schema
// validation, not lookup, hence 422 rather than 404.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, `{"error":"invalid task id"}`, http.StatusUnprocessableEntity)
		return 0, false
	}
	return id, true
}

// CreateTask handles POST /tasks/
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	logEntry := h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    "CreateTask",
		"request_id": requestID,
	})

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		logEntry.Warn("title is required")
		http.Error(w, `{"error":"title is required"}`, http.StatusUnprocessableEntity)
		return
	}

	task, err := h.taskService.Create(r.Context(), req.Title, req.Done)
	if err != nil {
		logEntry.WithError(err).Error("failed to create task")
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	logEntry.WithField("task_id", task.ID).Info("task created successfully")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toTaskResponse(task))
}

// ListTasks handles GET /tasks/
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	logEntry := h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    "ListTasks",
		"request_id": requestID,
	})

	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		logEntry.WithError(err).Error("failed to list tasks")
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	logEntry.WithField("count", len(tasks)).Debug("tasks listed")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toTaskResponses(tasks))
}

// GetTask handles GET /tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	logEntry := h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    "GetTask",
		"request_id": requestID,
	})

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrTaskNotFound) {
		logEntry.WithField("task_id", id).Warn("task not found")
		http.Error(w, `{"error":"task not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to get task")
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	logEntry.WithField("task_id", id).Debug("task retrieved")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toTaskResponse(task))
}

// UpdateTask handles PUT /tasks/{id}. The update is a full replacement:
// both title and done must be present.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	logEntry := h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    "UpdateTask",
		"request_id": requestID,
	})

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		logEntry.Warn("title is required")
		http.Error(w, `{"error":"title is required"}`, http.StatusUnprocessableEntity)
		return
	}
	if req.Done == nil {
		logEntry.Warn("done is required")
		http.Error(w, `{"error":"done is required"}`, http.StatusUnprocessableEntity)
		return
	}

	task, err := h.taskService.Update(r.Context(), id, *req.Title, *req.Done)
	if errors.Is(err, repository.ErrTaskNotFound) {
		logEntry.WithField("task_id", id).Warn("task not found for update")
		http.Error(w, `{"error":"task not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to update task")
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	logEntry.WithField("task_id", id).Info("task updated successfully")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toTaskResponse(task))
}

// DeleteTask handles DELETE /tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	logEntry := h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    "DeleteTask",
		"request_id": requestID,
	})

	id, ok := taskID(w, r)
	if !ok {
		return
	}

	err := h.taskService.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrTaskNotFound) {
		logEntry.WithField("task_id", id).Warn("task not found for deletion")
		http.Error(w, `{"error":"task not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to delete task")
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	logEntry.WithField("task_id", id).Info("task deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
