package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/valiholz845-byte/Rechnungs-App/internal/billing"
	"github.com/valiholz845-byte/Rechnungs-App/internal/models"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
)

// InvoiceService owns invoice creation (numbering, totals, persistence) and
// status changes. Handlers validate input shape; this layer holds the
// business rules.
type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

// NewInvoice is the creation request after handler-level validation.
type NewInvoice struct {
	CustomerID  string
	Items       []NewItem
	InvoiceDate models.Date
	DueDate     models.Date
	Notes       string
}

type NewItem struct {
	Kind        string
	Description string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Create computes totals, assigns the next invoice number and persists the
// invoice with its items in one transaction. Totals are stored as computed
// here and never touched again.
func (s *InvoiceService) Create(in NewInvoice) (*models.Invoice, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, "id = ?", in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	lineItems := make([]billing.LineItem, len(in.Items))
	for i, it := range in.Items {
		lineItems[i] = billing.LineItem{
			Kind:        it.Kind,
			Description: it.Description,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	totals, err := billing.ComputeTotals(lineItems)
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Subtotal:     models.MoneyFrom(totals.Subtotal),
		TaxRate:      19,
		TaxAmount:    models.MoneyFrom(totals.TaxAmount),
		TotalAmount:  models.MoneyFrom(totals.Total),
		InvoiceDate:  in.InvoiceDate,
		DueDate:      in.DueDate,
		Status:       string(billing.StatusDraft),
		Notes:        in.Notes,
	}
	inv.Items = make([]models.InvoiceItem, len(in.Items))
	for i, it := range in.Items {
		inv.Items[i] = models.InvoiceItem{
			Position:    i,
			Kind:        it.Kind,
			Description: it.Description,
			Unit:        it.Unit,
			Quantity:    models.Quantity{Decimal: it.Quantity},
			UnitPrice:   models.MoneyFrom(it.UnitPrice),
			TotalPrice:  models.MoneyFrom(totals.LineTotals[i]),
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Invoice{}).Count(&count).Error; err != nil {
			return err
		}
		inv.InvoiceNumber = fmt.Sprintf("INV-%04d", count+1)
		return tx.Create(inv).Error
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Get loads an invoice with its items in insertion order.
func (s *InvoiceService) Get(id string) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.DB.Preload("Items", itemOrder).First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// List returns all invoices, newest first.
func (s *InvoiceService) List() ([]models.Invoice, error) {
	var invs []models.Invoice
	err := s.DB.Preload("Items", itemOrder).Order("created_at DESC").Find(&invs).Error
	return invs, err
}

// SetStatus persists a status change and returns the updated invoice.
// Transitions are unrestricted (see billing.ParseStatus); a failed write
// surfaces as an error and leaves nothing changed for the caller.
func (s *InvoiceService) SetStatus(id string, status billing.Status) (*models.Invoice, error) {
	res := s.DB.Model(&models.Invoice{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvoiceNotFound
	}
	return s.Get(id)
}

func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
