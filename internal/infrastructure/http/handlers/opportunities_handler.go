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

// OpportunitiesHandler serves the /opportunities sales pipeline.
type OpportunitiesHandler struct {
	opportunities ports.OpportunityRepository
	validate      *validator.Validate
}

func NewOpportunitiesHandler(opportunities ports.OpportunityRepository) *OpportunitiesHandler {
	return &OpportunitiesHandler{opportunities: opportunities, validate: validator.New()}
}

type opportunityPayload struct {
	ClientID         string  `json:"clientId" validate:"required,uuid4"`
	Branch           string  `json:"branch" validate:"required,max=100"`
	Stage            string  `json:"stage" validate:"required,oneof=prospect quoted negotiating won lost"`
	EstimatedPremium float64 `json:"estimatedPremium" validate:"gte=0"`
	Currency         string  `json:"currency" validate:"required,len=3"`
	Notes            string  `json:"notes" validate:"max=2000"`
}

type opportunityResponse struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"clientId"`
	ClientName       string    `json:"clientName"`
	Branch           string    `json:"branch"`
	Stage            string    `json:"stage"`
	EstimatedPremium float64   `json:"estimatedPremium"`
	Currency         string    `json:"currency"`
	Notes            string    `json:"notes"`
	OwnerID          string    `json:"ownerId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toOpportunityResponse(o *domain.Opportunity) opportunityResponse {
	return opportunityResponse{
		ID:               o.ID.String(),
		ClientID:         o.ClientID.String(),
		ClientName:       o.ClientName,
		Branch:           o.Branch,
		Stage:            string(o.Stage),
		EstimatedPremium: o.EstimatedPremium,
		Currency:         o.Currency,
		Notes:            o.Notes,
		OwnerID:          o.OwnerID.String(),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func (h *OpportunitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r)
	var stage *domain.Stage
	if s := r.URL.Query().Get("stage"); s != "" {
		parsed, err := domain.ParseStage(s)
		if err != nil {
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Etapa inválida")
			return
		}
		stage = &parsed
	}
	list, err := h.opportunities.List(r.Context(), stage, limit, offset)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]opportunityResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOpportunityResponse(o))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"opportunities": items})
}

func (h *OpportunitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	o, err := h.opportunities.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOpportunityResponse(o))
}

func (h *OpportunitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "No autenticado")
		return
	}
	var body opportunityPayload
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Identificador inválido")
		return
	}
	stage, err := domain.ParseStage(body.Stage)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Etapa inválida")
		return
	}
	now := time.Now()
	o := &domain.Opportunity{
		ID:               uuid.New(),
		ClientID:         clientID,
		Branch:           body.Branch,
		Stage:            stage,
		EstimatedPremium: body.EstimatedPremium,
		Currency:         body.Currency,
		Notes:            body.Notes,
		OwnerID:          claims.AccountID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := h.opportunities.Create(r.Context(), o); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOpportunityResponse(o))
}

// MoveStage transitions an opportunity to a new pipeline stage.
func (h *OpportunitiesHandler) MoveStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body struct {
		Stage string `json:"stage" validate:"required,oneof=prospect quoted negotiating won lost"`
	}
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	stage, err := domain.ParseStage(body.Stage)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Etapa inválida")
		return
	}
	o, err := h.opportunities.GetByID(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	o.Stage = stage
	if err := h.opportunities.Update(r.Context(), o); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOpportunityResponse(o))
}

func (h *OpportunitiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.opportunities.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
