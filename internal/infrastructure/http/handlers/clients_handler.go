package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// listParams reads limit/offset query parameters with bounds.
func listParams(r *http.Request) (limit, offset int) {
	limit = defaultListLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = min(n, maxListLimit)
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// pathID parses the {id} route parameter; writes the 400 itself.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Identificador inválido")
		return uuid.Nil, false
	}
	return id, true
}

// ClientsHandler serves /clients.
type ClientsHandler struct {
	clients  ports.ClientRepository
	validate *validator.Validate
}

func NewClientsHandler(clients ports.ClientRepository) *ClientsHandler {
	return &ClientsHandler{clients: clients, validate: validator.New()}
}

type clientPayload struct {
	Name     string `json:"name" validate:"required,max=200"`
	Document string `json:"document" validate:"max=50"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Phone    string `json:"phone" validate:"max=50"`
	Address  string `json:"address" validate:"max=300"`
	Notes    string `json:"notes" validate:"max=2000"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r)
	list, err := h.clients.List(r.Context(), r.URL.Query().Get("search"), limit, offset)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]clientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toClientResponse(c))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"clients": items})
}

func (h *ClientsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.clients.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponse(c))
}

func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body clientPayload
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	now := time.Now()
	c := &domain.Client{
		ID:        uuid.New(),
		Name:      body.Name,
		Document:  body.Document,
		Email:     body.Email,
		Phone:     body.Phone,
		Address:   body.Address,
		Notes:     body.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.clients.Create(r.Context(), c); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClientResponse(c))
}

func (h *ClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body clientPayload
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	c := &domain.Client{
		ID:       id,
		Name:     body.Name,
		Document: body.Document,
		Email:    body.Email,
		Phone:    body.Phone,
		Address:  body.Address,
		Notes:    body.Notes,
	}
	if err := h.clients.Update(r.Context(), c); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.clients.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
