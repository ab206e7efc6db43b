package handlers

import (
	"net/http"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/repository"
)

// OrganizationHandler serves the organization directory the assignment UI's
// user search consumes.
type OrganizationHandler struct {
	directory *repository.DirectoryRepository
	log       *logger.Logger
}

func NewOrganizationHandler(directory *repository.DirectoryRepository) *OrganizationHandler {
	return &OrganizationHandler{
		directory: directory,
		log:       logger.NewLogger("organization-handler"),
	}
}

// ListUsers returns all members of the caller's organization.
func (h *OrganizationHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	users, err := h.directory.ListUsers(r.Context(), claims.OrganizationID)
	if err != nil {
		h.log.Error("Failed to list organization users", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to get users")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}
