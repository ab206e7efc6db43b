package team

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/database"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

// TeamService handles team-related operations. Team lists and member lists
// feed the assignment UI's team picker and user search.
type TeamService struct {
	DB  *sqlx.DB
	Log *logger.Logger
}

// CreateTeamRequest represents the request body for team creation.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewTeamService initializes a new team service.
func NewTeamService() *TeamService {
	return &TeamService{
		DB:  database.DB,
		Log: logger.NewLogger("team-service"),
	}
}

// CreateTeam handles the creation of a new team. The creator becomes the
// team's owner in the same transaction.
func (ts *TeamService) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ts.Log.Error("Failed to decode request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Team name is required")
		return
	}

	tx, err := ts.DB.BeginTxx(ctx, nil)
	if err != nil {
		ts.Log.Error("Failed to begin transaction", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback() // ignored once committed

	now := time.Now().Unix()
	team := models.Team{
		ID:             uuid.NewString(),
		OrganizationID: claims.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		IsActive:       true,
		CreatedBy:      claims.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO teams (id, organization_id, name, description, is_active, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, team.ID, team.OrganizationID, team.Name, team.Description, team.IsActive, team.CreatedBy, team.CreatedAt, team.UpdatedAt)
	if err != nil {
		ts.Log.Error("Failed to create team", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create team")
		return
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO team_members (team_id, user_id, role, joined_at, invited_by)
		VALUES (?, ?, ?, ?, ?)
	`, team.ID, claims.UserID, "owner", now, claims.UserID)
	if err != nil {
		ts.Log.Error("Failed to add creator to team", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create team")
		return
	}

	if err := tx.Commit(); err != nil {
		ts.Log.Error("Failed to commit transaction", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	ts.Log.Info("Team created", "team_id", team.ID, "user_id", claims.UserID)
	respondWithJSON(w, http.StatusCreated, team)
}

// GetOrganizationTeams lists the caller's organization's active teams.
func (ts *TeamService) GetOrganizationTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	query := `
		SELECT id, organization_id, name, description, is_active, created_by, created_at, updated_at
		FROM teams
		WHERE organization_id = ? AND is_active = TRUE
		ORDER BY name
	`
	rows, err := ts.DB.QueryxContext(ctx, query, claims.OrganizationID)
	if err != nil {
		ts.Log.Error("Failed to query teams", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get teams")
		return
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.OrganizationID, &t.Name, &t.Description, &t.IsActive, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			ts.Log.Error("Failed to scan team row", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to process teams data")
			return
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		ts.Log.Error("Error iterating teams rows", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to process teams data")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

// GetTeam retrieves a specific team by ID.
func (ts *TeamService) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	teamID := mux.Vars(r)["id"]

	var team models.Team
	query := `
		SELECT id, organization_id, name, description, is_active, created_by, created_at, updated_at
		FROM teams WHERE id = ? AND organization_id = ?
	`
	err := ts.DB.QueryRowxContext(ctx, query, teamID, claims.OrganizationID).Scan(
		&team.ID, &team.OrganizationID, &team.Name, &team.Description,
		&team.IsActive, &team.CreatedBy, &team.CreatedAt, &team.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		respondWithError(w, http.StatusNotFound, "Team not found")
		return
	}
	if err != nil {
		ts.Log.Error("Failed to query team", "error", err, "team_id", teamID)
		respondWithError(w, http.StatusInternalServerError, "Failed to get team details")
		return
	}

	respondWithJSON(w, http.StatusOK, team)
}

// GetTeamMembers lists a team's members with display data.
func (ts *TeamService) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	teamID := mux.Vars(r)["id"]

	query := `
		SELECT tm.team_id, tm.user_id, tm.role, tm.joined_at, u.name, u.email
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		JOIN teams t ON t.id = tm.team_id
		WHERE tm.team_id = ? AND t.organization_id = ?
		ORDER BY u.name
	`
	rows, err := ts.DB.QueryxContext(ctx, query, teamID, claims.OrganizationID)
	if err != nil {
		ts.Log.Error("Failed to query team members", "error", err, "team_id", teamID)
		respondWithError(w, http.StatusInternalServerError, "Failed to get team members")
		return
	}
	defer rows.Close()

	type memberView struct {
		models.TeamMember
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	members := []memberView{}
	for rows.Next() {
		var m memberView
		if err := rows.Scan(&m.TeamID, &m.UserID, &m.Role, &m.JoinedAt, &m.Name, &m.Email); err != nil {
			ts.Log.Error("Failed to scan member row", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to process members data")
			return
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		ts.Log.Error("Error iterating member rows", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to process members data")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"members": members})
}

// Helper functions for HTTP responses.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
