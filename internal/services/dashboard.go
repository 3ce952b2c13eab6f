package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/valiholz845-byte/Rechnungs-App/internal/models"
)

// DashboardService derives the aggregate view models. Revenue sums are
// folded in Go over the stored decimal amounts so both database drivers
// yield identical cent-exact results.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type TopCustomer struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	TotalRevenue models.Money `json:"total_revenue"`
	InvoiceCount int          `json:"invoice_count"`
	City         string       `json:"city"`
	PostalCode   string       `json:"postal_code"`
}

type MonthlyRevenue struct {
	Month   string       `json:"month"`
	Revenue models.Money `json:"revenue"`
}

type Stats struct {
	TotalCustomers  int64        `json:"total_customers"`
	TotalInvoices   int64        `json:"total_invoices"`
	TotalRevenue    models.Money `json:"total_revenue"`
	PendingInvoices int64        `json:"pending_invoices"`
}

// TopCustomers returns the five highest-revenue customers across all
// invoices. Customers that were deleted after invoicing are skipped.
func (s *DashboardService) TopCustomers() ([]TopCustomer, error) {
	invs, err := s.invoiceRows()
	if err != nil {
		return nil, err
	}

	type acc struct {
		name    string
		revenue decimal.Decimal
		count   int
	}
	byCustomer := map[string]*acc{}
	order := make([]string, 0)
	for _, inv := range invs {
		a, ok := byCustomer[inv.CustomerID]
		if !ok {
			a = &acc{name: inv.CustomerName}
			byCustomer[inv.CustomerID] = a
			order = append(order, inv.CustomerID)
		}
		a.revenue = a.revenue.Add(inv.TotalAmount.Decimal)
		a.count++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return byCustomer[order[i]].revenue.GreaterThan(byCustomer[order[j]].revenue)
	})
	if len(order) > 5 {
		order = order[:5]
	}

	var customers []models.Customer
	if err := s.DB.Where("id IN ?", order).Find(&customers).Error; err != nil {
		return nil, err
	}
	custByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		custByID[c.ID] = c
	}

	out := make([]TopCustomer, 0, len(order))
	for _, id := range order {
		c, ok := custByID[id]
		if !ok {
			continue
		}
		a := byCustomer[id]
		out = append(out, TopCustomer{
			ID:           id,
			Name:         a.name,
			TotalRevenue: models.MoneyFrom(a.revenue),
			InvoiceCount: a.count,
			City:         c.City,
			PostalCode:   c.PostalCode,
		})
	}
	return out, nil
}

var germanMonths = [13]string{"", "Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
	"Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}

// MonthlyRevenue groups invoice totals by the calendar month of the invoice
// date, in chronological order, labelled "Mär 2026" style.
func (s *DashboardService) MonthlyRevenue() ([]MonthlyRevenue, error) {
	invs, err := s.invoiceRows()
	if err != nil {
		return nil, err
	}

	type ym struct {
		year  int
		month int
	}
	sums := map[ym]decimal.Decimal{}
	keys := make([]ym, 0)
	for _, inv := range invs {
		k := ym{inv.InvoiceDate.Year(), int(inv.InvoiceDate.Month())}
		if _, ok := sums[k]; !ok {
			keys = append(keys, k)
		}
		sums[k] = sums[k].Add(inv.TotalAmount.Decimal)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]MonthlyRevenue, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthlyRevenue{
			Month:   fmt.Sprintf("%s %d", germanMonths[k.month], k.year),
			Revenue: models.MoneyFrom(sums[k]),
		})
	}
	return out, nil
}

// Stats returns the headline dashboard counters. Pending counts every
// invoice that is not yet paid, drafts included.
func (s *DashboardService) Stats() (Stats, error) {
	var st Stats
	if err := s.DB.Model(&models.Customer{}).Count(&st.TotalCustomers).Error; err != nil {
		return st, err
	}
	if err := s.DB.Model(&models.Invoice{}).Count(&st.TotalInvoices).Error; err != nil {
		return st, err
	}
	if err := s.DB.Model(&models.Invoice{}).Where("status <> ?", "paid").Count(&st.PendingInvoices).Error; err != nil {
		return st, err
	}
	invs, err := s.invoiceRows()
	if err != nil {
		return st, err
	}
	total := decimal.Zero
	for _, inv := range invs {
		total = total.Add(inv.TotalAmount.Decimal)
	}
	st.TotalRevenue = models.MoneyFrom(total)
	return st, nil
}

func (s *DashboardService) invoiceRows() ([]models.Invoice, error) {
	var invs []models.Invoice
	err := s.DB.Select("id", "customer_id", "customer_name", "total_amount", "invoice_date", "status").Find(&invs).Error
	return invs, err
}
