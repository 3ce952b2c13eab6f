package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice is immutable after creation except for its status. Totals are
// computed once when the invoice is created and stored as-is; reads never
// recompute them, so later edits to anything else can't shift history.
type Invoice struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	InvoiceNumber string        `gorm:"not null;uniqueIndex" json:"invoice_number"`
	CustomerID    string        `gorm:"not null;index" json:"customer_id"`
	CustomerName  string        `gorm:"not null" json:"customer_name"`
	Items         []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
	Subtotal      Money         `gorm:"type:numeric;not null" json:"subtotal"`
	TaxRate       float64       `gorm:"not null;default:19" json:"tax_rate"`
	TaxAmount     Money         `gorm:"type:numeric;not null" json:"tax_amount"`
	TotalAmount   Money         `gorm:"type:numeric;not null" json:"total_amount"`
	InvoiceDate   Date          `gorm:"type:date;not null" json:"invoice_date"`
	DueDate       Date          `gorm:"type:date;not null" json:"due_date"`
	Status        string        `gorm:"not null;default:'draft'" json:"status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// InvoiceItem is one billable row. Position preserves insertion order.
type InvoiceItem struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	InvoiceID   string   `gorm:"not null;index" json:"-"`
	Position    int      `gorm:"not null" json:"-"`
	Kind        string   `gorm:"not null" json:"type"`
	Description string   `gorm:"not null" json:"description"`
	Unit        string   `gorm:"not null" json:"unit"`
	Quantity    Quantity `gorm:"type:numeric;not null" json:"quantity"`
	UnitPrice   Money    `gorm:"type:numeric;not null" json:"unit_price"`
	TotalPrice  Money    `gorm:"type:numeric;not null" json:"total_price"`
}

func (i *Invoice) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (i *InvoiceItem) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
