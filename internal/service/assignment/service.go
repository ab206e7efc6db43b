package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/repository"
)

// TaskAssignmentStore is the persistence gateway for a task's assignment
// fields. UpdateAssignment must write the new state and the history record as
// one logical unit.
type TaskAssignmentStore interface {
	GetAssignment(ctx context.Context, taskID, organizationID string) (models.Assignment, error)
	UpdateAssignment(ctx context.Context, taskID, organizationID string, a models.Assignment, rec models.AssignmentHistoryRecord) error
}

// HistoryStore reads the append-only assignment log.
type HistoryStore interface {
	ListByTask(ctx context.Context, taskID string) ([]models.AssignmentHistoryRecord, error)
}

// DirectoryStore resolves users and teams for validation and audit
// denormalization.
type DirectoryStore interface {
	GetUser(ctx context.Context, userID, organizationID string) (models.User, error)
	GetTeam(ctx context.Context, teamID, organizationID string) (models.Team, error)
}

// Notifier is told about committed assignment changes. May be nil.
type Notifier interface {
	AssignmentChanged(organizationID, taskID string, a models.Assignment)
}

// Service is the task assignment state machine. A task moves between exactly
// three states: unassigned, assigned to individuals, assigned to a team.
// Operations are atomic from the caller's point of view; there is no visible
// in-flight state.
type Service struct {
	tasks     TaskAssignmentStore
	history   HistoryStore
	directory DirectoryStore
	notifier  Notifier
	log       *logger.Logger
}

func NewService(tasks TaskAssignmentStore, history HistoryStore, directory DirectoryStore, notifier Notifier) *Service {
	return &Service{
		tasks:     tasks,
		history:   history,
		directory: directory,
		notifier:  notifier,
		log:       logger.NewLogger("assignment-service"),
	}
}

// validate rejects structurally invalid requests before any write.
func validate(opts Options) error {
	if opts.TaskID == "" {
		return &ValidationError{Reason: "task id is required"}
	}
	if opts.AssignmentType == models.AssignmentTypeTeam {
		if opts.TeamID == "" {
			return &ValidationError{Reason: "team assignment requires a team"}
		}
		if len(opts.UserIDs) > 0 {
			return &ValidationError{Reason: "cannot assign both team and individual users simultaneously"}
		}
		return nil
	}
	if len(opts.UserIDs) == 0 {
		return &ValidationError{Reason: "individual assignment requires at least one user"}
	}
	if opts.TeamID != "" {
		return &ValidationError{Reason: "cannot assign both team and individual users simultaneously"}
	}
	return nil
}

// PreviewAssignment computes a dry-run diff of what AssignTask would do,
// without touching persisted state. Conflicts block commit; changes are
// informational.
func (s *Service) PreviewAssignment(ctx context.Context, opts Options) (*Preview, error) {
	current, err := s.tasks.GetAssignment(ctx, opts.TaskID, opts.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("load current assignment: %w", err)
	}
	proposed := opts.proposed()

	preview := &Preview{
		CurrentAssignments:  describe(current, string(models.SourceManual)),
		ProposedAssignments: describe(proposed, string(opts.AssignmentSource)),
		Changes:             diffAssignments(current, proposed),
	}

	if opts.AssignmentType == models.AssignmentTypeTeam {
		switch {
		case opts.TeamID == "":
			preview.Conflicts = append(preview.Conflicts, "No team selected for team assignment")
		default:
			if _, err := s.directory.GetTeam(ctx, opts.TeamID, opts.OrganizationID); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					preview.Conflicts = append(preview.Conflicts, "Assigned team does not exist")
				} else {
					return nil, fmt.Errorf("resolve team: %w", err)
				}
			}
		}
		if len(opts.UserIDs) > 0 {
			preview.Conflicts = append(preview.Conflicts, "Cannot assign both team and individual users simultaneously")
		}
	} else if len(opts.UserIDs) == 0 {
		preview.Conflicts = append(preview.Conflicts, "No users selected for individual assignment")
	}

	return preview, nil
}

// AssignTask validates the request, writes the new assignment state and
// appends one history record. The write and the history append happen in a
// single gateway transaction, so the audit trail cannot drift from the task.
func (s *Service) AssignTask(ctx context.Context, opts Options) error {
	if err := validate(opts); err != nil {
		return err
	}

	actor, err := s.directory.GetUser(ctx, opts.AssignedBy, opts.OrganizationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ValidationError{Reason: "acting user not found in organization"}
		}
		return fmt.Errorf("resolve acting user: %w", err)
	}

	proposed := opts.proposed()
	rec := models.AssignmentHistoryRecord{
		ID:               uuid.NewString(),
		TaskID:           opts.TaskID,
		AssignmentType:   opts.AssignmentType,
		AssignmentSource: opts.AssignmentSource,
		NewAssignment:    opts.snapshot(),
		AssignedByID:     actor.ID,
		AssignedByName:   actor.Name,
		AssignedByEmail:  actor.Email,
		Notes:            opts.Notes,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.tasks.UpdateAssignment(ctx, opts.TaskID, opts.OrganizationID, proposed, rec); err != nil {
		return fmt.Errorf("commit assignment: %w", err)
	}

	s.log.Audit("task assignment updated",
		"task_id", opts.TaskID,
		"assignment_type", opts.AssignmentType,
		"assigned_by", actor.ID,
	)
	if s.notifier != nil {
		s.notifier.AssignmentChanged(opts.OrganizationID, opts.TaskID, proposed)
	}
	return nil
}

// UnassignTask clears every assignment field and logs a record with type
// "unassigned". It is idempotent: unassigning an already-unassigned task
// succeeds and still appends a record, because the log captures intent, not
// only state change.
func (s *Service) UnassignTask(ctx context.Context, taskID, organizationID, actorID string) error {
	if taskID == "" {
		return &ValidationError{Reason: "task id is required"}
	}

	actor, err := s.directory.GetUser(ctx, actorID, organizationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ValidationError{Reason: "acting user not found in organization"}
		}
		return fmt.Errorf("resolve acting user: %w", err)
	}

	rec := models.AssignmentHistoryRecord{
		ID:               uuid.NewString(),
		TaskID:           taskID,
		AssignmentType:   models.AssignmentTypeUnassigned,
		AssignmentSource: models.SourceManual,
		AssignedByID:     actor.ID,
		AssignedByName:   actor.Name,
		AssignedByEmail:  actor.Email,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.tasks.UpdateAssignment(ctx, taskID, organizationID, models.Unassigned(), rec); err != nil {
		return fmt.Errorf("commit unassignment: %w", err)
	}

	s.log.Audit("task unassigned", "task_id", taskID, "unassigned_by", actor.ID)
	if s.notifier != nil {
		s.notifier.AssignmentChanged(organizationID, taskID, models.Unassigned())
	}
	return nil
}

// GetAssignmentHistory returns a task's assignment log, newest first. Every
// call is a fresh read.
func (s *Service) GetAssignmentHistory(ctx context.Context, taskID string) ([]models.AssignmentHistoryRecord, error) {
	records, err := s.history.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("load assignment history: %w", err)
	}
	return records, nil
}
