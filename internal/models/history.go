package models

import "time"

// NewAssignmentSnapshot is the structured payload stored on a history record.
// Unassignment records carry no snapshot.
type NewAssignmentSnapshot struct {
	AssignedToNames    []string `json:"assigned_to_names,omitempty"`
	AssignedToTeamName string   `json:"assigned_to_team_name,omitempty"`
}

// AssignmentHistoryRecord is one immutable entry in a task's append-only
// assignment log. Records are never updated or deleted; the newest record is
// authoritative for "current assignment".
type AssignmentHistoryRecord struct {
	ID               string                 `json:"id"`
	TaskID           string                 `json:"task_id"`
	AssignmentType   AssignmentType         `json:"assignment_type"`
	AssignmentSource AssignmentSource       `json:"assignment_source"`
	NewAssignment    *NewAssignmentSnapshot `json:"new_assignment,omitempty"`
	AssignedByID     string                 `json:"assigned_by_id"`
	AssignedByName   string                 `json:"assigned_by_name"`
	AssignedByEmail  string                 `json:"assigned_by_email"`
	Notes            string                 `json:"notes,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}
