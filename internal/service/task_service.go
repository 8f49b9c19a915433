package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// TaskInput carries the mutable fields of a task. Update replaces all of
// them; empty priority and status fall back to their defaults on create.
type TaskInput struct {
	Title       string
	Description string
	DueAt       *time.Time
	Priority    model.Priority
	Status      model.Status
}

// TaskService orchestrates owner-scoped task operations. Callers pass the
// owner ID resolved from the request's bearer token; a task missing or owned
// by someone else surfaces the same not-found error.
type TaskService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input TaskInput) (*model.Task, error)
	List(ctx context.Context, ownerID uuid.UUID, filter repository.TaskFilter) ([]model.Task, error)
	Get(ctx context.Context, id, ownerID uuid.UUID) (*model.Task, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, input TaskInput) (*model.Task, error)
	Complete(ctx context.Context, id, ownerID uuid.UUID) (*model.Task, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type taskService struct {
	tasks repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

// Create creates a task for ownerID, defaulting priority to media and status
// to pendente when unset.
func (s *taskService) Create(ctx context.Context, ownerID uuid.UUID, input TaskInput) (*model.Task, error) {
	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	status := input.Status
	if status == "" {
		status = model.StatusPending
	}

	task := &model.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Priority:    priority,
		Status:      status,
		OwnerID:     ownerID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// List returns the owner's tasks with optional status/priority filters.
func (s *taskService) List(ctx context.Context, ownerID uuid.UUID, filter repository.TaskFilter) ([]model.Task, error) {
	tasks, err := s.tasks.FindByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the owner's task by ID.
func (s *taskService) Get(ctx context.Context, id, ownerID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return task, nil
}

// Update fully replaces the task's mutable fields and bumps atualizada_em.
func (s *taskService) Update(ctx context.Context, id, ownerID uuid.UUID, input TaskInput) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	task.Title = input.Title
	task.Description = input.Description
	task.DueAt = input.DueAt
	task.Priority = input.Priority
	task.Status = input.Status
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Complete marks the task concluida, bumping atualizada_em even when the
// status was already concluida.
func (s *taskService) Complete(ctx context.Context, id, ownerID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	task.Status = model.StatusCompleted
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	return task, nil
}

// Delete hard-deletes the owner's task.
func (s *taskService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.tasks.Delete(ctx, id, ownerID); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func mapNotFound(err error) error {
	if err == gorm.ErrRecordNotFound {
		return apperrors.ErrTaskNotFound
	}
	return err
}
