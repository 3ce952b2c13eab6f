package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/valiholz845-byte/Rechnungs-App/internal/httpx"
	"github.com/valiholz845-byte/Rechnungs-App/internal/models"
	"github.com/valiholz845-byte/Rechnungs-App/internal/validation"
)

type TodoHandler struct {
	DB *gorm.DB
}

func NewTodoHandler(db *gorm.DB) *TodoHandler {
	return &TodoHandler{DB: db}
}

var todoStatuses = []string{models.TodoPending, models.TodoCompleted}

type todoReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CustomerID  string `json:"customer_id"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time"`
	Status      string `json:"status"`
}

func (r todoReq) validate() (models.Date, validation.Violations) {
	v := validation.Violations{}
	validation.Required("title", r.Title, v)
	dueDate, err := models.ParseDate(r.DueDate)
	if err != nil {
		v["due_date"] = "invalid_date"
	}
	validation.TimeOfDay("due_time", r.DueTime, v)
	if r.Status != "" {
		validation.OneOf("status", r.Status, todoStatuses, v)
	}
	return dueDate, v
}

// customerExists verifies an optional customer reference before writing.
func (h *TodoHandler) customerExists(id string) (bool, error) {
	var count int64
	err := h.DB.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List: GET /api/todos — soonest due first.
func (h *TodoHandler) List(w http.ResponseWriter, _ *http.Request) {
	var todos []models.Todo
	if err := h.DB.Order("due_date ASC, due_time ASC").Find(&todos).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_todos", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, todos)
}

// Create: POST /api/todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req todoReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	dueDate, v := req.validate()
	if req.CustomerID != "" && v.Empty() {
		ok, err := h.customerExists(req.CustomerID)
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_todo", nil)
			return
		}
		if !ok {
			v["customer_id"] = "unknown_customer"
		}
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	status := req.Status
	if status == "" {
		status = models.TodoPending
	}
	todo := models.Todo{
		Title:       req.Title,
		Description: req.Description,
		CustomerID:  req.CustomerID,
		DueDate:     dueDate,
		DueTime:     req.DueTime,
		Status:      status,
	}
	if err := h.DB.Create(&todo).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_todo", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, todo)
}

// Update: PUT /api/todos/{id} — full validated replacement.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var todo models.Todo
	err := h.DB.First(&todo, "id = ?", r.PathValue("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_todo", nil)
		return
	}
	var req todoReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	dueDate, v := req.validate()
	if req.CustomerID != "" && v.Empty() {
		ok, err := h.customerExists(req.CustomerID)
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_todo", nil)
			return
		}
		if !ok {
			v["customer_id"] = "unknown_customer"
		}
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	todo.Title = req.Title
	todo.Description = req.Description
	todo.CustomerID = req.CustomerID
	todo.DueDate = dueDate
	todo.DueTime = req.DueTime
	if req.Status != "" {
		todo.Status = req.Status
	}
	if err := h.DB.Save(&todo).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_todo", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, todo)
}
