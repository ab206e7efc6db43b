package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/repository"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/service/assignment"
)

// AssignmentHandler exposes the assignment service over HTTP. It does no
// business logic of its own: the body is normalized into assignment options
// and handed to the service, with the actor always taken from the JWT claims.
type AssignmentHandler struct {
	service *assignment.Service
	log     *logger.Logger
}

func NewAssignmentHandler(service *assignment.Service) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		log:     logger.NewLogger("assignment-handler"),
	}
}

// assignmentRequest is the JSON body for preview and commit. Team mode must
// omit user fields entirely and vice versa; the service rejects mixed bodies.
type assignmentRequest struct {
	AssignmentType string   `json:"assignment_type"`
	UserIDs        []string `json:"user_ids,omitempty"`
	UserNames      []string `json:"user_names,omitempty"`
	TeamID         string   `json:"team_id,omitempty"`
	TeamName       string   `json:"team_name,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

func (h *AssignmentHandler) optionsFromRequest(r *http.Request, claims middleware.Claims) (assignment.Options, bool) {
	var req assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return assignment.Options{}, false
	}

	opts := assignment.Options{
		TaskID:           mux.Vars(r)["id"],
		AssignmentType:   normalizeType(req.AssignmentType, len(req.UserIDs)),
		AssignmentSource: "manual",
		UserIDs:          req.UserIDs,
		UserNames:        req.UserNames,
		TeamID:           req.TeamID,
		TeamName:         req.TeamName,
		OrganizationID:   claims.OrganizationID,
		AssignedBy:       claims.UserID,
		Notes:            req.Notes,
	}
	return opts, true
}

// normalizeType applies the options-builder rule server-side: the tab is only
// authoritative for team mode; otherwise the selection count decides.
func normalizeType(requested string, userCount int) models.AssignmentType {
	if requested == "team" {
		return models.AssignmentTypeTeam
	}
	if userCount > 1 {
		return models.AssignmentTypeMultiple
	}
	return models.AssignmentTypeIndividual
}

// Preview returns the dry-run diff for a pending assignment.
func (h *AssignmentHandler) Preview(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	opts, ok := h.optionsFromRequest(r, claims)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	preview, err := h.service.PreviewAssignment(r.Context(), opts)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Task not found")
			return
		}
		h.log.Error("Failed to preview assignment", "error", err, "task_id", opts.TaskID)
		respondError(w, http.StatusInternalServerError, "Failed to generate assignment preview")
		return
	}

	respondJSON(w, http.StatusOK, preview)
}

// Assign commits an assignment change.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	opts, ok := h.optionsFromRequest(r, claims)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.AssignTask(r.Context(), opts); err != nil {
		h.writeAssignError(w, err, opts.TaskID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Task assignment updated successfully"})
}

// Unassign clears a task's assignment.
func (h *AssignmentHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	taskID := mux.Vars(r)["id"]

	if err := h.service.UnassignTask(r.Context(), taskID, claims.OrganizationID, claims.UserID); err != nil {
		h.writeAssignError(w, err, taskID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Task unassigned successfully"})
}

// History returns the task's assignment log, newest first.
func (h *AssignmentHandler) History(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	records, err := h.service.GetAssignmentHistory(r.Context(), taskID)
	if err != nil {
		h.log.Error("Failed to load assignment history", "error", err, "task_id", taskID)
		respondError(w, http.StatusInternalServerError, "Failed to get assignment history")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"history": records})
}

// writeAssignError maps the service's error taxonomy onto status codes:
// validation failures are the caller's fault, everything else is a gateway
// failure.
func (h *AssignmentHandler) writeAssignError(w http.ResponseWriter, err error, taskID string) {
	switch {
	case assignment.IsValidation(err):
		respondError(w, http.StatusBadRequest, "Assignment failed: "+err.Error())
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "Task not found")
	default:
		h.log.Error("Assignment operation failed", "error", err, "task_id", taskID)
		respondError(w, http.StatusInternalServerError, "Failed to save assignment")
	}
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
