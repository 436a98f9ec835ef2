package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/isdelr/tasks-api-be/internal/models"
	"github.com/isdelr/tasks-api-be/internal/services"
	"github.com/isdelr/tasks-api-be/internal/validation"
)

// TaskHandler handles HTTP requests for task management.
type TaskHandler struct {
	service services.TaskServiceProvider
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service services.TaskServiceProvider) *TaskHandler {
	return &TaskHandler{service: service}
}

// sortPairError is reported when only one of sortBy and sortDirection is supplied.
var sortPairError = validation.FieldError{
	Type:     "fields",
	Value:    "81e545e00",
	Msg:      MsgSortFieldsRequired,
	Path:     "sortBy, sortDirection",
	Location: validation.LocationQuery,
}

type createdTaskResponse struct {
	Message     string      `json:"message"`
	CreatedTask models.Task `json:"createdTask"`
}

type updatedTaskResponse struct {
	Message string      `json:"message"`
	Updated models.Task `json:"updated"`
}

// GetAll handles listing tasks with pagination, filtering and sorting.
func (h *TaskHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if errs := validation.ListTasks.Validate(validation.Input{Query: query}); errs != nil {
		respondError(w, r, errs)
		return
	}
	if query.Has("sortBy") != query.Has("sortDirection") {
		respondError(w, r, validation.Errors{sortPairError})
		return
	}

	q := models.TaskQuery{
		Page:          intOrDefault(query.Get("page"), models.DefaultPage),
		Limit:         intOrDefault(query.Get("limit"), models.DefaultLimit),
		SortBy:        query.Get("sortBy"),
		SortDirection: query.Get("sortDirection"),
	}
	if query.Has("completed") {
		completed, _ := validation.ParseBool(query.Get("completed"))
		q.Completed = &completed
	}

	tasks, err := h.service.List(r.Context(), q)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

// Get handles retrieving a single task.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if errs := validation.TaskID.Validate(idInput(id)); errs != nil {
		respondError(w, r, errs)
		return
	}

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// Create handles creating a new task.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if errs := validation.CreateTask.Validate(validation.Input{Body: body}); errs != nil {
		respondError(w, r, errs)
		return
	}

	task := models.Task{Name: validation.Escape(body["name"].(string))}
	if desc, ok := body["description"].(string); ok {
		task.Description = validation.Escape(desc)
	}
	task.Completed, _ = validation.ParseBool(body["completed"])

	created, err := h.service.Create(r.Context(), task)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, createdTaskResponse{Message: MsgTaskCreated, CreatedTask: created})
}

// Update handles partially updating a task. Empty strings are treated as absent.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if errs := validation.TaskID.Validate(idInput(id)); errs != nil {
		respondError(w, r, errs)
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if errs := validation.UpdateTask.Validate(validation.Input{Body: body}); errs != nil {
		respondError(w, r, errs)
		return
	}

	var patch models.TaskPatch
	if name, _ := body["name"].(string); name != "" {
		name = validation.Escape(name)
		patch.Name = &name
	}
	if desc, _ := body["description"].(string); desc != "" {
		desc = validation.Escape(desc)
		patch.Description = &desc
	}
	if v, ok := body["completed"]; ok {
		if completed, ok := validation.ParseBool(v); ok {
			patch.Completed = &completed
		}
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updatedTaskResponse{Message: MsgTaskUpdated, Updated: updated})
}

// Delete handles deleting a task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if errs := validation.TaskID.Validate(idInput(id)); errs != nil {
		respondError(w, r, errs)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func idInput(id string) validation.Input {
	return validation.Input{Params: map[string]string{"id": id}}
}

func intOrDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
