package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/valiholz845-byte/Rechnungs-App/internal/models"
)

func TestTodoCreateDefaultsToPending(t *testing.T) {
	conn := setupTestDB(t)
	h := NewTodoHandler(conn)

	body := `{"title":"Angebot nachfassen","due_date":"2025-07-01","due_time":"09:30"}`
	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/todos", body))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var todo models.Todo
	decodeBody(t, w, &todo)
	if todo.Status != models.TodoPending {
		t.Fatalf("expected pending, got %s", todo.Status)
	}
	if todo.DueTime != "09:30" {
		t.Fatalf("due_time: %s", todo.DueTime)
	}
}

func TestTodoCreateWithCustomer(t *testing.T) {
	conn := setupTestDB(t)
	h := NewTodoHandler(conn)
	c := createCustomer(t, conn, "kunde")

	body := fmt.Sprintf(`{"title":"Rechnung klären","customer_id":%q,"due_date":"2025-07-02"}`, c.ID)
	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/todos", body))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	// unknown customer reference is rejected before the write
	bad := `{"title":"x","customer_id":"missing","due_date":"2025-07-02"}`
	w = httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/todos", bad))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	var resp struct {
		Details map[string]string `json:"details"`
	}
	decodeBody(t, w, &resp)
	if resp.Details["customer_id"] != "unknown_customer" {
		t.Fatalf("unexpected details: %s", w.Body.String())
	}
}

func TestTodoCreateValidation(t *testing.T) {
	conn := setupTestDB(t)
	h := NewTodoHandler(conn)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing title", `{"due_date":"2025-07-01"}`, "title"},
		{"bad date", `{"title":"x","due_date":"01.07.2025"}`, "due_date"},
		{"bad time", `{"title":"x","due_date":"2025-07-01","due_time":"25:00"}`, "due_time"},
		{"bad status", `{"title":"x","due_date":"2025-07-01","status":"done"}`, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Create(w, jsonRequest(t, http.MethodPost, "/api/todos", tt.body))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
			}
			var resp struct {
				Details map[string]string `json:"details"`
			}
			decodeBody(t, w, &resp)
			if _, ok := resp.Details[tt.wantField]; !ok {
				t.Fatalf("expected violation on %s: %s", tt.wantField, w.Body.String())
			}
		})
	}
}

func TestTodoUpdateCompletes(t *testing.T) {
	conn := setupTestDB(t)
	h := NewTodoHandler(conn)

	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(t, http.MethodPost, "/api/todos", `{"title":"Anruf","due_date":"2025-07-01"}`))
	var todo models.Todo
	decodeBody(t, w, &todo)

	body := `{"title":"Anruf","due_date":"2025-07-01","status":"completed"}`
	req := jsonRequest(t, http.MethodPut, "/api/todos/"+todo.ID, body)
	req.SetPathValue("id", todo.ID)
	w = httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var updated models.Todo
	decodeBody(t, w, &updated)
	if updated.Status != models.TodoCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}

	req = jsonRequest(t, http.MethodPut, "/api/todos/missing", body)
	req.SetPathValue("id", "missing")
	w = httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestTodoListOrdering(t *testing.T) {
	conn := setupTestDB(t)
	h := NewTodoHandler(conn)

	for _, b := range []string{
		`{"title":"später","due_date":"2025-07-05"}`,
		`{"title":"zuerst","due_date":"2025-07-01","due_time":"08:00"}`,
		`{"title":"danach","due_date":"2025-07-01","due_time":"14:00"}`,
	} {
		w := httptest.NewRecorder()
		h.Create(w, jsonRequest(t, http.MethodPost, "/api/todos", b))
		if w.Code != http.StatusCreated {
			t.Fatalf("create: %d", w.Code)
		}
	}

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/todos", nil))
	var list []models.Todo
	decodeBody(t, w, &list)
	if len(list) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(list))
	}
	if list[0].Title != "zuerst" || list[1].Title != "danach" || list[2].Title != "später" {
		t.Fatalf("unexpected order: %v %v %v", list[0].Title, list[1].Title, list[2].Title)
	}
}
