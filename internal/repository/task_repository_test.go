package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

func newMockRepo(t *testing.T) (*TaskRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "mysql")
	return NewTaskRepository(db), mock
}

func historyRecord(taskID string) models.AssignmentHistoryRecord {
	return models.AssignmentHistoryRecord{
		ID:               "rec-1",
		TaskID:           taskID,
		AssignmentType:   models.AssignmentTypeIndividual,
		AssignmentSource: models.SourceManual,
		AssignedByID:     "manager-1",
		AssignedByName:   "Morgan",
		AssignedByEmail:  "morgan@example.com",
		CreatedAt:        time.Now().UTC(),
	}
}

func TestUpdateAssignmentWritesTaskAndHistoryInOneTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tasks").
		WithArgs("user-1", []byte(`["user-1"]`), []byte(`["Alice"]`), nil, nil, sqlmock.AnyArg(), "task-1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO task_assignment_history").
		WithArgs("rec-1", "task-1", "individual", "manual", sqlmock.AnyArg(),
			"manager-1", "Morgan", "morgan@example.com", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	a := models.AssignedToUsers([]string{"user-1"}, []string{"Alice"})
	rec := historyRecord("task-1")
	rec.NewAssignment = &models.NewAssignmentSnapshot{AssignedToNames: []string{"Alice"}}

	err := repo.UpdateAssignment(context.Background(), "task-1", "org-1", a, rec)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAssignmentTeamClearsUserColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tasks").
		WithArgs(nil, nil, nil, "team-1", "Ops", sqlmock.AnyArg(), "task-1", "org-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO task_assignment_history").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	a := models.AssignedToTeam("team-1", "Ops")
	err := repo.UpdateAssignment(context.Background(), "task-1", "org-1", a, historyRecord("task-1"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAssignmentUnknownTaskRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tasks").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	a := models.AssignedToTeam("team-1", "Ops")
	err := repo.UpdateAssignment(context.Background(), "missing", "org-1", a, historyRecord("missing"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAssignmentHistoryFailureRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tasks").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO task_assignment_history").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	a := models.AssignedToUsers([]string{"user-1"}, []string{"Alice"})
	err := repo.UpdateAssignment(context.Background(), "task-1", "org-1", a, historyRecord("task-1"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func assignmentColumns() []string {
	return []string{"assigned_to_id", "assigned_to_ids", "assigned_to_names", "assigned_to_team_id", "assigned_to_team_name"}
}

func TestGetAssignmentTeamWinsOverUserColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(assignmentColumns()).
		AddRow(nil, []byte(`["user-1"]`), []byte(`["Alice"]`), "team-1", "Ops")
	mock.ExpectQuery("SELECT assigned_to_id").
		WithArgs("task-1", "org-1").
		WillReturnRows(rows)

	a, err := repo.GetAssignment(context.Background(), "task-1", "org-1")
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentTeam, a.Kind)
	assert.Equal(t, "team-1", a.TeamID)
	assert.Empty(t, a.UserIDs)
}

func TestGetAssignmentDecodesUserArrays(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(assignmentColumns()).
		AddRow("user-1", []byte(`["user-1","user-2"]`), []byte(`["Alice","Bob"]`), nil, nil)
	mock.ExpectQuery("SELECT assigned_to_id").
		WithArgs("task-1", "org-1").
		WillReturnRows(rows)

	a, err := repo.GetAssignment(context.Background(), "task-1", "org-1")
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentIndividuals, a.Kind)
	assert.Equal(t, []string{"user-1", "user-2"}, a.UserIDs)
	assert.Equal(t, []string{"Alice", "Bob"}, a.UserNames)
}

func TestGetAssignmentLegacyRowDoesNotBorrowTeamName(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Old rows: only assigned_to_id is set, possibly with a stale team name
	// left behind. The team name must never surface as the user's name.
	rows := sqlmock.NewRows(assignmentColumns()).
		AddRow("user-9", nil, nil, nil, "Ops")
	mock.ExpectQuery("SELECT assigned_to_id").
		WithArgs("task-1", "org-1").
		WillReturnRows(rows)

	a, err := repo.GetAssignment(context.Background(), "task-1", "org-1")
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentIndividuals, a.Kind)
	assert.Equal(t, []string{"user-9"}, a.UserIDs)
	assert.Equal(t, []string{"Unknown"}, a.UserNames)
}

func TestGetAssignmentEmptyColumnsMeansUnassigned(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(assignmentColumns()).
		AddRow(nil, nil, nil, nil, nil)
	mock.ExpectQuery("SELECT assigned_to_id").
		WithArgs("task-1", "org-1").
		WillReturnRows(rows)

	a, err := repo.GetAssignment(context.Background(), "task-1", "org-1")
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentNone, a.Kind)
	assert.False(t, a.IsAssigned())
}

func TestGetAssignmentUnknownTaskReturnsNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT assigned_to_id").
		WithArgs("missing", "org-1").
		WillReturnRows(sqlmock.NewRows(assignmentColumns()))

	_, err := repo.GetAssignment(context.Background(), "missing", "org-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByTaskReturnsNewestFirst(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	repo := NewHistoryRepository(sqlx.NewDb(mockDB, "mysql"))

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "task_id", "assignment_type", "assignment_source", "new_assignment",
		"assigned_by_id", "assigned_by_name", "assigned_by_email", "notes", "created_at",
	}).
		AddRow("rec-2", "task-1", "team", "manual", []byte(`{"assigned_to_team_name":"Ops"}`),
			"manager-1", "Morgan", "morgan@example.com", "", now).
		AddRow("rec-1", "task-1", "individual", "manual", []byte(`{"assigned_to_names":["Alice"]}`),
			"manager-1", "Morgan", "morgan@example.com", "", now.Add(-time.Hour))
	mock.ExpectQuery("FROM task_assignment_history").
		WithArgs("task-1").
		WillReturnRows(rows)

	records, err := repo.ListByTask(context.Background(), "task-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec-2", records[0].ID)
	require.NotNil(t, records[0].NewAssignment)
	assert.Equal(t, "Ops", records[0].NewAssignment.AssignedToTeamName)
	assert.Equal(t, []string{"Alice"}, records[1].NewAssignment.AssignedToNames)
}
