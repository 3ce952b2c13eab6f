package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/valiholz845-byte/Rechnungs-App/internal/httpx"
	"github.com/valiholz845-byte/Rechnungs-App/internal/models"
	"github.com/valiholz845-byte/Rechnungs-App/internal/validation"
)

type CompanyHandler struct {
	DB *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{DB: db}
}

type companyReq struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	TaxNumber   string `json:"tax_number"`
	BankName    string `json:"bank_name"`
	IBAN        string `json:"iban"`
	BIC         string `json:"bic"`
	LogoURL     string `json:"logo_url"`
}

func (r companyReq) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("company_name", r.CompanyName, v)
	validation.Required("address", r.Address, v)
	validation.Required("postal_code", r.PostalCode, v)
	validation.Required("city", r.City, v)
	validation.Required("phone", r.Phone, v)
	validation.Required("email", r.Email, v)
	validation.Email("email", r.Email, v)
	validation.Required("tax_number", r.TaxNumber, v)
	validation.Required("bank_name", r.BankName, v)
	validation.Required("iban", r.IBAN, v)
	validation.Required("bic", r.BIC, v)
	return v
}

// Get: GET /api/company — a deployment that never saved a profile gets a
// JSON null body, not a 404.
func (h *CompanyHandler) Get(w http.ResponseWriter, _ *http.Request) {
	var company models.Company
	err := h.DB.First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_company", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, company)
}

// Upsert: POST /api/company — creates the singleton row or replaces its
// fields, keeping the existing id.
func (h *CompanyHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req companyReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	var company models.Company
	err := h.DB.First(&company).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_company", nil)
		return
	}
	company.CompanyName = req.CompanyName
	company.Address = req.Address
	company.PostalCode = req.PostalCode
	company.City = req.City
	company.Phone = req.Phone
	company.Email = req.Email
	company.Website = req.Website
	company.TaxNumber = req.TaxNumber
	company.BankName = req.BankName
	company.IBAN = req.IBAN
	company.BIC = req.BIC
	company.LogoURL = req.LogoURL
	if err := h.DB.Save(&company).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_company", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, company)
}
