package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

// DirectoryRepository resolves users and teams within an organization. The
// assignment service uses it to verify referenced teams exist and to
// denormalize actor display data onto history records.
type DirectoryRepository struct {
	db *sqlx.DB
}

func NewDirectoryRepository(db *sqlx.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// GetUser loads one organization member.
func (r *DirectoryRepository) GetUser(ctx context.Context, userID, organizationID string) (models.User, error) {
	var user models.User
	query := `SELECT id, organization_id, email, name, created_at FROM users WHERE id = ? AND organization_id = ?`
	err := r.db.QueryRowxContext(ctx, query, userID, organizationID).
		Scan(&user.ID, &user.OrganizationID, &user.Email, &user.Name, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

// ListUsers returns all organization members for the assignment user search.
func (r *DirectoryRepository) ListUsers(ctx context.Context, organizationID string) ([]models.User, error) {
	query := `SELECT id, organization_id, email, name, created_at FROM users WHERE organization_id = ? ORDER BY name`
	rows, err := r.db.QueryxContext(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.OrganizationID, &u.Email, &u.Name, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// GetTeam loads one team scoped to an organization.
func (r *DirectoryRepository) GetTeam(ctx context.Context, teamID, organizationID string) (models.Team, error) {
	var team models.Team
	query := `
		SELECT id, organization_id, name, description, is_active, created_by, created_at, updated_at
		FROM teams WHERE id = ? AND organization_id = ?
	`
	err := r.db.QueryRowxContext(ctx, query, teamID, organizationID).Scan(
		&team.ID, &team.OrganizationID, &team.Name, &team.Description,
		&team.IsActive, &team.CreatedBy, &team.CreatedAt, &team.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Team{}, ErrNotFound
	}
	if err != nil {
		return models.Team{}, fmt.Errorf("query team: %w", err)
	}
	return team, nil
}
