package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
)

// InsurersHandler serves /insurers.
type InsurersHandler struct {
	insurers ports.InsurerRepository
	validate *validator.Validate
}

func NewInsurersHandler(insurers ports.InsurerRepository) *InsurersHandler {
	return &InsurersHandler{insurers: insurers, validate: validator.New()}
}

type insurerPayload struct {
	Name         string `json:"name" validate:"required,max=200"`
	ContactName  string `json:"contactName" validate:"max=200"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email,max=254"`
	Phone        string `json:"phone" validate:"max=50"`
}

type insurerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactName  string    `json:"contactName"`
	ContactEmail string    `json:"contactEmail"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toInsurerResponse(i *domain.Insurer) insurerResponse {
	return insurerResponse{
		ID:           i.ID.String(),
		Name:         i.Name,
		ContactName:  i.ContactName,
		ContactEmail: i.ContactEmail,
		Phone:        i.Phone,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (h *InsurersHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r)
	list, err := h.insurers.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]insurerResponse, 0, len(list))
	for _, i := range list {
		items = append(items, toInsurerResponse(i))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"insurers": items})
}

func (h *InsurersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	i, err := h.insurers.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toInsurerResponse(i))
}

func (h *InsurersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body insurerPayload
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	now := time.Now()
	i := &domain.Insurer{
		ID:           uuid.New(),
		Name:         body.Name,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
		Phone:        body.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.insurers.Create(r.Context(), i); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInsurerResponse(i))
}

func (h *InsurersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body insurerPayload
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	i := &domain.Insurer{
		ID:           id,
		Name:         body.Name,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
		Phone:        body.Phone,
	}
	if err := h.insurers.Update(r.Context(), i); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *InsurersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.insurers.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
