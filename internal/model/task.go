package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority is the task priority level.
type Priority string

// Priority levels, lowest to highest.
const (
	PriorityLow    Priority = "baixa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status is the task lifecycle state.
type Status string

// Task statuses.
const (
	StatusPending    Status = "pendente"
	StatusInProgress Status = "em_andamento"
	StatusCompleted  Status = "concluida"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a task owned by exactly one user. It is only visible and
// mutable through its owner's identity.
type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"titulo" gorm:"size:255;not null"`
	Description string     `json:"descricao" gorm:"type:text"`
	DueAt       *time.Time `json:"data_vencimento"`
	Priority    Priority   `json:"prioridade" gorm:"size:20;not null;default:'media';index"`
	Status      Status     `json:"status" gorm:"size:20;not null;default:'pendente';index"`
	OwnerID     uuid.UUID  `json:"dono_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time  `json:"criado_em"`
	UpdatedAt   time.Time  `json:"atualizada_em"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
