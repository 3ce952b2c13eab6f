package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/valiholz845-byte/Rechnungs-App/internal/billing"
	"github.com/valiholz845-byte/Rechnungs-App/internal/httpx"
	"github.com/valiholz845-byte/Rechnungs-App/internal/models"
	"github.com/valiholz845-byte/Rechnungs-App/internal/services"
	"github.com/valiholz845-byte/Rechnungs-App/internal/validation"
)

type InvoiceHandler struct {
	Svc *services.InvoiceService
}

func NewInvoiceHandler(svc *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Svc: svc}
}

type invoiceItemReq struct {
	Kind        string          `json:"type"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type invoiceCreateReq struct {
	CustomerID  string           `json:"customer_id"`
	Items       []invoiceItemReq `json:"items"`
	InvoiceDate string           `json:"invoice_date"`
	DueDate     string           `json:"due_date"`
	Notes       string           `json:"notes"`
}

func (r invoiceCreateReq) validate() (models.Date, models.Date, validation.Violations) {
	v := validation.Violations{}
	validation.Required("customer_id", r.CustomerID, v)
	if len(r.Items) == 0 {
		v["items"] = "required"
	}
	for i, it := range r.Items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }
		validation.OneOf(field("type"), it.Kind, billing.Kinds, v)
		validation.Required(field("description"), it.Description, v)
		validation.OneOf(field("unit"), it.Unit, billing.Units, v)
		validation.Positive(field("quantity"), it.Quantity, v)
		validation.NotNegative(field("unit_price"), it.UnitPrice, v)
	}
	invoiceDate, err := models.ParseDate(r.InvoiceDate)
	if err != nil {
		v["invoice_date"] = "invalid_date"
	}
	dueDate, err := models.ParseDate(r.DueDate)
	if err != nil {
		v["due_date"] = "invalid_date"
	} else if _, ok := v["invoice_date"]; !ok && dueDate.Before(invoiceDate) {
		v["due_date"] = "before_invoice_date"
	}
	return invoiceDate, dueDate, v
}

// List: GET /api/invoices — newest first.
func (h *InvoiceHandler) List(w http.ResponseWriter, _ *http.Request) {
	invoices, err := h.Svc.List()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_invoices", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, invoices)
}

// Create: POST /api/invoices — the server assigns number and totals.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req invoiceCreateReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	invoiceDate, dueDate, v := req.validate()
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	in := services.NewInvoice{
		CustomerID:  req.CustomerID,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Notes:       req.Notes,
	}
	in.Items = make([]services.NewItem, len(req.Items))
	for i, it := range req.Items {
		in.Items[i] = services.NewItem{
			Kind:        it.Kind,
			Description: it.Description,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	invoice, err := h.Svc.Create(in)
	if err != nil {
		var itemErr *billing.ItemError
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			httpx.JSONError(w, http.StatusNotFound, "customer_not_found", nil)
		case errors.Is(err, billing.ErrNoItems):
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"items": "required"})
		case errors.As(err, &itemErr):
			details := map[string]string{fmt.Sprintf("items[%d].%s", itemErr.Index, itemErr.Field): itemErr.Reason}
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", details)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_invoice", nil)
		}
		return
	}
	httpx.JSON(w, http.StatusCreated, invoice)
}

// Get: GET /api/invoices/{id}
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.Svc.Get(r.PathValue("id"))
	if errors.Is(err, services.ErrInvoiceNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_invoice", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

// UpdateStatus: PUT /api/invoices/{id}/status
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	status, err := billing.ParseStatus(req.Status)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"status": "invalid_value"})
		return
	}
	invoice, err := h.Svc.SetStatus(r.PathValue("id"), status)
	if errors.Is(err, services.ErrInvoiceNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_status", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}
