package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func TestTaskService_Create(t *testing.T) {
	ownerID := uuid.New()

	t.Run("applies defaults for priority and status", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

		service := NewTaskService(mockRepo)
		task, err := service.Create(context.Background(), ownerID, TaskInput{Title: "Buy milk"})

		assert.NoError(t, err)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, model.PriorityMedium, task.Priority)
		assert.Equal(t, model.StatusPending, task.Status)
		assert.Equal(t, ownerID, task.OwnerID)
		assert.NotEqual(t, uuid.Nil, task.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("keeps explicit priority and status", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

		service := NewTaskService(mockRepo)
		task, err := service.Create(context.Background(), ownerID, TaskInput{
			Title:    "Relatório",
			Priority: model.PriorityHigh,
			Status:   model.StatusInProgress,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.PriorityHigh, task.Priority)
		assert.Equal(t, model.StatusInProgress, task.Status)
		mockRepo.AssertExpectations(t)
	})
}

func TestTaskService_Get(t *testing.T) {
	ownerID := uuid.New()
	taskID := uuid.New()

	t.Run("missing or foreign task maps to not found", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID, ownerID).Return(nil, gorm.ErrRecordNotFound)

		service := NewTaskService(mockRepo)
		task, err := service.Get(context.Background(), taskID, ownerID)

		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
		assert.Nil(t, task)
		mockRepo.AssertExpectations(t)
	})

	t.Run("owned task is returned", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID, ownerID).Return(&model.Task{ID: taskID, OwnerID: ownerID}, nil)

		service := NewTaskService(mockRepo)
		task, err := service.Get(context.Background(), taskID, ownerID)

		assert.NoError(t, err)
		assert.Equal(t, taskID, task.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestTaskService_Update(t *testing.T) {
	ownerID := uuid.New()
	taskID := uuid.New()

	t.Run("replaces all mutable fields", func(t *testing.T) {
		existing := &model.Task{
			ID:          taskID,
			Title:       "old title",
			Description: "old description",
			Priority:    model.PriorityLow,
			Status:      model.StatusPending,
			OwnerID:     ownerID,
		}
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID, ownerID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, existing).Return(nil)

		service := NewTaskService(mockRepo)
		task, err := service.Update(context.Background(), taskID, ownerID, TaskInput{
			Title:    "new title",
			Priority: model.PriorityHigh,
			Status:   model.StatusInProgress,
		})

		assert.NoError(t, err)
		assert.Equal(t, "new title", task.Title)
		assert.Empty(t, task.Description)
		assert.Equal(t, model.PriorityHigh, task.Priority)
		assert.Equal(t, model.StatusInProgress, task.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found passes through", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID, ownerID).Return(nil, gorm.ErrRecordNotFound)

		service := NewTaskService(mockRepo)
		_, err := service.Update(context.Background(), taskID, ownerID, TaskInput{Title: "x"})

		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestTaskService_Complete(t *testing.T) {
	ownerID := uuid.New()
	taskID := uuid.New()

	t.Run("sets status to concluida", func(t *testing.T) {
		existing := &model.Task{ID: taskID, Status: model.StatusPending, OwnerID: ownerID}
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID, ownerID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
			return task.Status == model.StatusCompleted
		})).Return(nil)

		service := NewTaskService(mockRepo)
		task, err := service.Complete(context.Background(), taskID, ownerID)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, task.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found passes through", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID, ownerID).Return(nil, gorm.ErrRecordNotFound)

		service := NewTaskService(mockRepo)
		_, err := service.Complete(context.Background(), taskID, ownerID)

		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ownerID := uuid.New()
	taskID := uuid.New()

	t.Run("deletes owned task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("Delete", mock.Anything, taskID, ownerID).Return(nil)

		service := NewTaskService(mockRepo)
		assert.NoError(t, service.Delete(context.Background(), taskID, ownerID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing or foreign task maps to not found", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("Delete", mock.Anything, taskID, ownerID).Return(gorm.ErrRecordNotFound)

		service := NewTaskService(mockRepo)
		err := service.Delete(context.Background(), taskID, ownerID)
		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
		mockRepo.AssertExpectations(t)
	})
}
