package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasktracker/internal/model"
)

// TaskFilter narrows a task listing. Nil fields match everything.
type TaskFilter struct {
	Status   *model.Status
	Priority *model.Priority
}

// TaskRepository defines task persistence operations. Every read and write
// after creation is scoped by owner ID, so a task that exists but belongs to
// another user is indistinguishable from one that does not exist.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Task, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task record.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID for the given owner.
func (r *taskRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByOwner lists the owner's tasks with optional equality filters.
// No pagination; insertion order.
func (r *taskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves the task, bumping updated_at.
func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete hard-deletes the task for the given owner. Returns
// gorm.ErrRecordNotFound when nothing matched.
func (r *taskRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
