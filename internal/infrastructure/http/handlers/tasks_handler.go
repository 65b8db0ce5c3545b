package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
	"github.com/ufernand853/seguros-main-sub000/internal/infrastructure/http/middleware"
)

// TasksHandler serves /tasks follow-ups.
type TasksHandler struct {
	tasks    ports.TaskRepository
	validate *validator.Validate
}

func NewTasksHandler(tasks ports.TaskRepository) *TasksHandler {
	return &TasksHandler{tasks: tasks, validate: validator.New()}
}

type taskPayload struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	ClientID    string    `json:"clientId" validate:"omitempty,uuid4"`
	AssigneeID  string    `json:"assigneeId" validate:"omitempty,uuid4"`
	DueAt       time.Time `json:"dueAt" validate:"required"`
}

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ClientID    *string   `json:"clientId,omitempty"`
	AssigneeID  string    `json:"assigneeId"`
	DueAt       time.Time `json:"dueAt"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		AssigneeID:  t.AssigneeID.String(),
		DueAt:       t.DueAt,
		Done:        t.Done,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.ClientID != nil {
		s := t.ClientID.String()
		resp.ClientID = &s
	}
	return resp
}

// List returns tasks; ?mine=true filters to the caller, ?pending=true
// hides completed ones.
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r)
	var assignee *domain.AccountID
	if r.URL.Query().Get("mine") == "true" {
		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "No autenticado")
			return
		}
		assignee = &claims.AccountID
	}
	pendingOnly := r.URL.Query().Get("pending") == "true"
	list, err := h.tasks.List(r.Context(), assignee, pendingOnly, limit, offset)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]taskResponse, 0, len(list))
	for _, t := range list {
		items = append(items, toTaskResponse(t))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": items})
}

func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "No autenticado")
		return
	}
	var body taskPayload
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	// Unassigned tasks default to the creator.
	assignee := claims.AccountID
	if body.AssigneeID != "" {
		id, err := uuid.Parse(body.AssigneeID)
		if err != nil {
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Identificador inválido")
			return
		}
		assignee = domain.NewAccountID(id)
	}
	var clientID *uuid.UUID
	if body.ClientID != "" {
		id, err := uuid.Parse(body.ClientID)
		if err != nil {
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Identificador inválido")
			return
		}
		clientID = &id
	}
	now := time.Now()
	t := &domain.Task{
		ID:          uuid.New(),
		Title:       body.Title,
		Description: body.Description,
		ClientID:    clientID,
		AssigneeID:  assignee,
		DueAt:       body.DueAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.tasks.Create(r.Context(), t); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(t))
}

// Complete marks a task done.
func (h *TasksHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	t.Done = true
	if err := h.tasks.Update(r.Context(), t); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.tasks.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
