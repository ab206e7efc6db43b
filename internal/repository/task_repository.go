package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

// ErrNotFound is returned when a row does not exist or is outside the caller's
// organization.
var ErrNotFound = errors.New("not found")

// TaskRepository owns reads and writes of task rows, including the assignment
// columns the assignment service operates on.
type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID                 string         `db:"id"`
	OrganizationID     string         `db:"organization_id"`
	Title              string         `db:"title"`
	Description        sql.NullString `db:"description"`
	Status             string         `db:"status"`
	Priority           string         `db:"priority"`
	AssignedToID       sql.NullString `db:"assigned_to_id"`
	AssignedToIDs      []byte         `db:"assigned_to_ids"`
	AssignedToNames    []byte         `db:"assigned_to_names"`
	AssignedToTeamID   sql.NullString `db:"assigned_to_team_id"`
	AssignedToTeamName sql.NullString `db:"assigned_to_team_name"`
	CreatedBy          string         `db:"created_by"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func (r taskRow) toModel() (models.Task, error) {
	assignment, err := assignmentFromColumns(r.AssignedToIDs, r.AssignedToNames, r.AssignedToTeamID, r.AssignedToTeamName, r.AssignedToID)
	if err != nil {
		return models.Task{}, err
	}
	return models.Task{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Title:          r.Title,
		Description:    r.Description.String,
		Status:         r.Status,
		Priority:       r.Priority,
		Assignment:     assignment,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}, nil
}

// assignmentFromColumns rebuilds the assignment union from the task row's
// nullable columns. The legacy single-assignee column is honored when the
// multi-assignment columns are empty.
func assignmentFromColumns(idsJSON, namesJSON []byte, teamID, teamName, legacyID sql.NullString) (models.Assignment, error) {
	if teamID.Valid && teamID.String != "" {
		return models.AssignedToTeam(teamID.String, teamName.String), nil
	}
	if len(idsJSON) > 0 {
		var ids, names []string
		if err := json.Unmarshal(idsJSON, &ids); err != nil {
			return models.Assignment{}, fmt.Errorf("decode assigned_to_ids: %w", err)
		}
		if len(namesJSON) > 0 {
			if err := json.Unmarshal(namesJSON, &names); err != nil {
				return models.Assignment{}, fmt.Errorf("decode assigned_to_names: %w", err)
			}
		}
		return models.AssignedToUsers(ids, names), nil
	}
	if legacyID.Valid && legacyID.String != "" {
		// Legacy rows carry no display name; the constructor pads with
		// "Unknown".
		return models.AssignedToUsers([]string{legacyID.String}, nil), nil
	}
	return models.Unassigned(), nil
}

const taskColumns = `id, organization_id, title, description, status, priority,
	assigned_to_id, assigned_to_ids, assigned_to_names,
	assigned_to_team_id, assigned_to_team_name,
	created_by, created_at, updated_at`

// Create inserts a new task. Tasks start unassigned.
func (r *TaskRepository) Create(ctx context.Context, task models.Task) error {
	query := `
		INSERT INTO tasks (id, organization_id, title, description, status, priority, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.OrganizationID, task.Title, task.Description,
		task.Status, task.Priority, task.CreatedBy, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID loads one task scoped to an organization.
func (r *TaskRepository) GetByID(ctx context.Context, taskID, organizationID string) (models.Task, error) {
	var row taskRow
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND organization_id = ?`
	err := r.db.GetContext(ctx, &row, query, taskID, organizationID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("query task: %w", err)
	}
	return row.toModel()
}

// ListByOrganization returns an organization's tasks, newest first.
func (r *TaskRepository) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]models.Task, error) {
	var rows []taskRow
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE organization_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`
	if err := r.db.SelectContext(ctx, &rows, query, organizationID, limit, offset); err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	tasks := make([]models.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toModel()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetAssignment reads only a task's current assignment state.
func (r *TaskRepository) GetAssignment(ctx context.Context, taskID, organizationID string) (models.Assignment, error) {
	var row struct {
		AssignedToID       sql.NullString `db:"assigned_to_id"`
		AssignedToIDs      []byte         `db:"assigned_to_ids"`
		AssignedToNames    []byte         `db:"assigned_to_names"`
		AssignedToTeamID   sql.NullString `db:"assigned_to_team_id"`
		AssignedToTeamName sql.NullString `db:"assigned_to_team_name"`
	}
	query := `
		SELECT assigned_to_id, assigned_to_ids, assigned_to_names, assigned_to_team_id, assigned_to_team_name
		FROM tasks WHERE id = ? AND organization_id = ?
	`
	err := r.db.GetContext(ctx, &row, query, taskID, organizationID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Assignment{}, ErrNotFound
	}
	if err != nil {
		return models.Assignment{}, fmt.Errorf("query task assignment: %w", err)
	}
	return assignmentFromColumns(row.AssignedToIDs, row.AssignedToNames, row.AssignedToTeamID, row.AssignedToTeamName, row.AssignedToID)
}

// UpdateAssignment writes a task's new assignment state and appends the
// matching history record in one transaction, so an assignment change can
// never land without its audit entry.
func (r *TaskRepository) UpdateAssignment(ctx context.Context, taskID, organizationID string, a models.Assignment, rec models.AssignmentHistoryRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op once committed

	var (
		legacyID, teamID, teamName sql.NullString
		idsJSON, namesJSON         interface{}
	)
	switch a.Kind {
	case models.AssignmentTeam:
		teamID = sql.NullString{String: a.TeamID, Valid: true}
		teamName = sql.NullString{String: a.TeamName, Valid: true}
	case models.AssignmentIndividuals:
		if len(a.UserIDs) == 1 {
			legacyID = sql.NullString{String: a.UserIDs[0], Valid: true}
		}
		ids, err := json.Marshal(a.UserIDs)
		if err != nil {
			return fmt.Errorf("encode assigned_to_ids: %w", err)
		}
		names, err := json.Marshal(a.UserNames)
		if err != nil {
			return fmt.Errorf("encode assigned_to_names: %w", err)
		}
		idsJSON, namesJSON = ids, names
	}

	query := `
		UPDATE tasks
		SET assigned_to_id = ?, assigned_to_ids = ?, assigned_to_names = ?,
		    assigned_to_team_id = ?, assigned_to_team_name = ?, updated_at = ?
		WHERE id = ? AND organization_id = ?
	`
	result, err := tx.ExecContext(ctx, query,
		legacyID, idsJSON, namesJSON, teamID, teamName, time.Now().UTC(),
		taskID, organizationID,
	)
	if err != nil {
		return fmt.Errorf("update task assignment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	// Matched rows, not changed rows: the DSN sets clientFoundRows, so a
	// rewrite of identical values still counts and zero means the task row
	// does not exist in this organization.
	if affected == 0 {
		return ErrNotFound
	}

	if err := insertHistory(ctx, tx, rec); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit assignment transaction: %w", err)
	}
	return nil
}
