package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company holds the issuing business's own profile: the letterhead and bank
// details printed on invoices. A deployment has at most one row.
type Company struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	CompanyName string    `gorm:"not null" json:"company_name"`
	Address     string    `gorm:"not null" json:"address"`
	PostalCode  string    `gorm:"not null" json:"postal_code"`
	City        string    `gorm:"not null" json:"city"`
	Phone       string    `gorm:"not null" json:"phone"`
	Email       string    `gorm:"not null" json:"email"`
	Website     string    `json:"website,omitempty"`
	TaxNumber   string    `gorm:"not null" json:"tax_number"`
	BankName    string    `gorm:"not null" json:"bank_name"`
	IBAN        string    `gorm:"column:iban;not null" json:"iban"`
	BIC         string    `gorm:"column:bic;not null" json:"bic"`
	LogoURL     string    `json:"logo_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Company) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
