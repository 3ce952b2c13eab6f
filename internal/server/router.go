package server

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/valiholz845-byte/Rechnungs-App/internal/handlers"
	"github.com/valiholz845-byte/Rechnungs-App/internal/httpx"
	"github.com/valiholz845-byte/Rechnungs-App/internal/services"
)

// New constructs the root http.Handler with all routes and middleware.
func New(db *gorm.DB, log *zap.Logger, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ch := handlers.NewCustomerHandler(db)
	mux.HandleFunc("GET /api/customers", ch.List)
	mux.HandleFunc("POST /api/customers", ch.Create)
	mux.HandleFunc("GET /api/customers/{id}", ch.Get)
	mux.HandleFunc("PUT /api/customers/{id}", ch.Update)
	mux.HandleFunc("DELETE /api/customers/{id}", ch.Delete)

	ih := handlers.NewInvoiceHandler(services.NewInvoiceService(db))
	mux.HandleFunc("GET /api/invoices", ih.List)
	mux.HandleFunc("POST /api/invoices", ih.Create)
	mux.HandleFunc("GET /api/invoices/{id}", ih.Get)
	mux.HandleFunc("PUT /api/invoices/{id}/status", ih.UpdateStatus)

	coh := handlers.NewCompanyHandler(db)
	mux.HandleFunc("GET /api/company", coh.Get)
	mux.HandleFunc("POST /api/company", coh.Upsert)

	th := handlers.NewTodoHandler(db)
	mux.HandleFunc("GET /api/todos", th.List)
	mux.HandleFunc("POST /api/todos", th.Create)
	mux.HandleFunc("PUT /api/todos/{id}", th.Update)

	dh := handlers.NewDashboardHandler(services.NewDashboardService(db))
	mux.HandleFunc("GET /api/dashboard/top-customers", dh.TopCustomers)
	mux.HandleFunc("GET /api/dashboard/monthly-revenue", dh.MonthlyRevenue)
	mux.HandleFunc("GET /api/dashboard/stats", dh.Stats)

	return withCORS(corsOrigins, withRecover(log, withLogging(log, mux)))
}
