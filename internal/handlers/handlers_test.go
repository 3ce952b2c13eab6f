package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/valiholz845-byte/Rechnungs-App/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Customer{}, &models.Company{}, &models.Invoice{}, &models.InvoiceItem{}, &models.Todo{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response: %v body=%s", err, w.Body.String())
	}
}

func createCustomer(t *testing.T, conn *gorm.DB, name string) models.Customer {
	t.Helper()
	c := models.Customer{
		Name:       name,
		Email:      name + "@example.de",
		Address:    "Musterweg 2",
		PostalCode: "80331",
		City:       "München",
	}
	if err := conn.Create(&c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}
