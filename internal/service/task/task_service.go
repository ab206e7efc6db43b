package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/logger"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/repository"
)

// Service owns the task lifecycle. Assignment changes go through the
// assignment service, never through here.
type Service struct {
	repo *repository.TaskRepository
	log  *logger.Logger
}

func NewService(repo *repository.TaskRepository) *Service {
	return &Service{
		repo: repo,
		log:  logger.NewLogger("task-service"),
	}
}

// CreateInput carries the caller-provided fields for a new task.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Create inserts a new, unassigned task.
func (s *Service) Create(ctx context.Context, organizationID, createdBy string, input CreateInput) (models.Task, error) {
	if input.Title == "" {
		return models.Task{}, fmt.Errorf("title is required")
	}
	if input.Priority == "" {
		input.Priority = "medium"
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         "pending",
		Priority:       input.Priority,
		Assignment:     models.Unassigned(),
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return models.Task{}, err
	}
	s.log.Info("Task created", "task_id", task.ID, "organization_id", organizationID)
	return task, nil
}

// Get loads one task scoped to the caller's organization.
func (s *Service) Get(ctx context.Context, taskID, organizationID string) (models.Task, error) {
	return s.repo.GetByID(ctx, taskID, organizationID)
}

// List returns the organization's tasks, newest first.
func (s *Service) List(ctx context.Context, organizationID string, limit, offset int) ([]models.Task, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByOrganization(ctx, organizationID, limit, offset)
}
