package users

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/database"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

type ProfileService struct {
	DB  *sqlx.DB
	Log *logger.Logger
}

func NewProfileService() *ProfileService {
	return &ProfileService{
		DB:  database.DB,
		Log: logger.NewLogger("profile-service"),
	}
}

// GetUserProfile returns the authenticated caller's profile.
func (ps *ProfileService) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var user models.User
	query := "SELECT id, organization_id, email, name, created_at FROM users WHERE id = ?"
	err := ps.DB.QueryRowxContext(r.Context(), query, claims.UserID).
		Scan(&user.ID, &user.OrganizationID, &user.Email, &user.Name, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		ps.Log.Error("Failed to query user profile", "error", err, "user_id", claims.UserID)
		http.Error(w, "Failed to get user details", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{"user_details": user})
}

// UpdateUserProfile updates the caller's display name.
func (ps *ProfileService) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if user.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	_, err := ps.DB.ExecContext(r.Context(), "UPDATE users SET name = ? WHERE id = ?", user.Name, claims.UserID)
	if err != nil {
		ps.Log.Error("Failed to update user profile", "error", err, "user_id", claims.UserID)
		http.Error(w, "Failed to update user details", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "User details updated successfully"})
}
