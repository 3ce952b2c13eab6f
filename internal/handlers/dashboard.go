package handlers

import (
	"net/http"

	"github.com/valiholz845-byte/Rechnungs-App/internal/httpx"
	"github.com/valiholz845-byte/Rechnungs-App/internal/services"
)

type DashboardHandler struct {
	Svc *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

// TopCustomers: GET /api/dashboard/top-customers
func (h *DashboardHandler) TopCustomers(w http.ResponseWriter, _ *http.Request) {
	top, err := h.Svc.TopCustomers()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_aggregate", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, top)
}

// MonthlyRevenue: GET /api/dashboard/monthly-revenue
func (h *DashboardHandler) MonthlyRevenue(w http.ResponseWriter, _ *http.Request) {
	months, err := h.Svc.MonthlyRevenue()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_aggregate", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, months)
}

// Stats: GET /api/dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	stats, err := h.Svc.Stats()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_aggregate", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
