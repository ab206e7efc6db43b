package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

// HistoryRepository reads the append-only task assignment log. Writes happen
// only through TaskRepository.UpdateAssignment, inside the same transaction as
// the assignment change itself.
type HistoryRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// ListByTask returns a task's full assignment history, newest first. Each call
// is a fresh read; nothing is cached.
func (r *HistoryRepository) ListByTask(ctx context.Context, taskID string) ([]models.AssignmentHistoryRecord, error) {
	query := `
		SELECT id, task_id, assignment_type, assignment_source, new_assignment,
		       assigned_by_id, assigned_by_name, assigned_by_email, notes, created_at
		FROM task_assignment_history
		WHERE task_id = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryxContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("query assignment history: %w", err)
	}
	defer rows.Close()

	var records []models.AssignmentHistoryRecord
	for rows.Next() {
		var rec models.AssignmentHistoryRecord
		var snapshot []byte
		err := rows.Scan(
			&rec.ID, &rec.TaskID, &rec.AssignmentType, &rec.AssignmentSource, &snapshot,
			&rec.AssignedByID, &rec.AssignedByName, &rec.AssignedByEmail, &rec.Notes, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan assignment history row: %w", err)
		}
		if len(snapshot) > 0 {
			var s models.NewAssignmentSnapshot
			if err := json.Unmarshal(snapshot, &s); err != nil {
				return nil, fmt.Errorf("decode new_assignment: %w", err)
			}
			rec.NewAssignment = &s
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignment history: %w", err)
	}
	return records, nil
}

// insertHistory appends one immutable record inside the caller's transaction.
func insertHistory(ctx context.Context, tx *sqlx.Tx, rec models.AssignmentHistoryRecord) error {
	var snapshot interface{}
	if rec.NewAssignment != nil {
		data, err := json.Marshal(rec.NewAssignment)
		if err != nil {
			return fmt.Errorf("encode new_assignment: %w", err)
		}
		snapshot = data
	}

	query := `
		INSERT INTO task_assignment_history
			(id, task_id, assignment_type, assignment_source, new_assignment,
			 assigned_by_id, assigned_by_name, assigned_by_email, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, query,
		rec.ID, rec.TaskID, string(rec.AssignmentType), string(rec.AssignmentSource), snapshot,
		rec.AssignedByID, rec.AssignedByName, rec.AssignedByEmail, rec.Notes, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assignment history: %w", err)
	}
	return nil
}
