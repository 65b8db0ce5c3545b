package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
)

// PoliciesHandler serves /policies and the /renewals projection.
type PoliciesHandler struct {
	policies ports.PolicyRepository
	validate *validator.Validate
}

func NewPoliciesHandler(policies ports.PolicyRepository) *PoliciesHandler {
	return &PoliciesHandler{policies: policies, validate: validator.New()}
}

type policyPayload struct {
	Number    string    `json:"number" validate:"required,max=100"`
	ClientID  string    `json:"clientId" validate:"required,uuid4"`
	InsurerID string    `json:"insurerId" validate:"required,uuid4"`
	Branch    string    `json:"branch" validate:"required,max=100"`
	Premium   float64   `json:"premium" validate:"gte=0"`
	Currency  string    `json:"currency" validate:"required,len=3"`
	Status    string    `json:"status" validate:"required,oneof=active expired cancelled"`
	StartsAt  time.Time `json:"startsAt" validate:"required"`
	ExpiresAt time.Time `json:"expiresAt" validate:"required"`
}

type policyResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	ClientID    string    `json:"clientId"`
	ClientName  string    `json:"clientName"`
	InsurerID   string    `json:"insurerId"`
	InsurerName string    `json:"insurerName"`
	Branch      string    `json:"branch"`
	Premium     float64   `json:"premium"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	StartsAt    time.Time `json:"startsAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toPolicyResponse(p *domain.Policy) policyResponse {
	return policyResponse{
		ID:          p.ID.String(),
		Number:      p.Number,
		ClientID:    p.ClientID.String(),
		ClientName:  p.ClientName,
		InsurerID:   p.InsurerID.String(),
		InsurerName: p.InsurerName,
		Branch:      p.Branch,
		Premium:     p.Premium,
		Currency:    p.Currency,
		Status:      string(p.Status),
		StartsAt:    p.StartsAt,
		ExpiresAt:   p.ExpiresAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (h *PoliciesHandler) policyFromPayload(id uuid.UUID, body policyPayload) (*domain.Policy, error) {
	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return nil, err
	}
	insurerID, err := uuid.Parse(body.InsurerID)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParsePolicyStatus(body.Status)
	if err != nil {
		return nil, err
	}
	return &domain.Policy{
		ID:        id,
		Number:    body.Number,
		ClientID:  clientID,
		InsurerID: insurerID,
		Branch:    body.Branch,
		Premium:   body.Premium,
		Currency:  body.Currency,
		Status:    status,
		StartsAt:  body.StartsAt,
		ExpiresAt: body.ExpiresAt,
	}, nil
}

func (h *PoliciesHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r)
	var clientID *uuid.UUID
	if c := r.URL.Query().Get("clientId"); c != "" {
		id, err := uuid.Parse(c)
		if err != nil {
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Identificador inválido")
			return
		}
		clientID = &id
	}
	list, err := h.policies.List(r.Context(), clientID, limit, offset)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]policyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPolicyResponse(p))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"policies": items})
}

func (h *PoliciesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.policies.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPolicyResponse(p))
}

func (h *PoliciesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body policyPayload
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	p, err := h.policyFromPayload(uuid.New(), body)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Faltan campos obligatorios o son inválidos")
		return
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := h.policies.Create(r.Context(), p); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPolicyResponse(p))
}

func (h *PoliciesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body policyPayload
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	p, err := h.policyFromPayload(id, body)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Faltan campos obligatorios o son inválidos")
		return
	}
	if err := h.policies.Update(r.Context(), p); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *PoliciesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.policies.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

const defaultRenewalWindowDays = 30

type renewalResponse struct {
	PolicyID    string    `json:"policyId"`
	Number      string    `json:"number"`
	ClientName  string    `json:"clientName"`
	InsurerName string    `json:"insurerName"`
	Branch      string    `json:"branch"`
	Premium     float64   `json:"premium"`
	Currency    string    `json:"currency"`
	ExpiresAt   time.Time `json:"expiresAt"`
	DaysLeft    int       `json:"daysLeft"`
}

// Renewals lists active policies expiring within ?days (default 30).
func (h *PoliciesHandler) Renewals(w http.ResponseWriter, r *http.Request) {
	days := defaultRenewalWindowDays
	if d := r.URL.Query().Get("days"); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 {
			days = n
		}
	}
	list, err := h.policies.ExpiringWithin(r.Context(), days)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]renewalResponse, 0, len(list))
	for _, ren := range list {
		items = append(items, renewalResponse{
			PolicyID:    ren.PolicyID.String(),
			Number:      ren.Number,
			ClientName:  ren.ClientName,
			InsurerName: ren.InsurerName,
			Branch:      ren.Branch,
			Premium:     ren.Premium,
			Currency:    ren.Currency,
			ExpiresAt:   ren.ExpiresAt,
			DaysLeft:    ren.DaysLeft,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"renewals": items})
}
