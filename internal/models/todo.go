package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TodoPending   = "pending"
	TodoCompleted = "completed"
)

// Todo is a scheduling reminder, optionally tied to a customer.
type Todo struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	CustomerID  string    `gorm:"index" json:"customer_id,omitempty"`
	DueDate     Date      `gorm:"type:date;not null" json:"due_date"`
	DueTime     string    `json:"due_time,omitempty"`
	Status      string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Todo) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
