package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/repository"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/service/task"
)

type TaskHandler struct {
	service *task.Service
	log     *logger.Logger
}

func NewTaskHandler(service *task.Service) *TaskHandler {
	return &TaskHandler{
		service: service,
		log:     logger.NewLogger("task-handler"),
	}
}

// Create handles new task creation. Tasks start unassigned.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var input task.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Title == "" {
		respondError(w, http.StatusBadRequest, "Title is required")
		return
	}

	created, err := h.service.Create(r.Context(), claims.OrganizationID, claims.UserID, input)
	if err != nil {
		h.log.Error("Failed to create task", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create task")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// Get returns one task.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	taskID := mux.Vars(r)["id"]
	found, err := h.service.Get(r.Context(), taskID, claims.OrganizationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Task not found")
			return
		}
		h.log.Error("Failed to get task", "error", err, "task_id", taskID)
		respondError(w, http.StatusInternalServerError, "Failed to get task")
		return
	}

	respondJSON(w, http.StatusOK, found)
}

// List returns the organization's tasks with simple pagination.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	tasks, err := h.service.List(r.Context(), claims.OrganizationID, limit, (page-1)*limit)
	if err != nil {
		h.log.Error("Failed to list tasks", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to get tasks")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tasks":    tasks,
		"page":     page,
		"per_page": limit,
	})
}
