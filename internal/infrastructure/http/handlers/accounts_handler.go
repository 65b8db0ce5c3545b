package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
	"github.com/ufernand853/seguros-main-sub000/internal/domain"
)

// AccountsHandler serves /accounts (admin only). Account deletion is a
// business-layer concern and is deliberately not exposed here.
type AccountsHandler struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAccountsHandler(accounts ports.AccountRepository, hasher ports.PasswordHasher, log zerolog.Logger) *AccountsHandler {
	return &AccountsHandler{accounts: accounts, hasher: hasher, validate: validator.New(), log: log}
}

func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r)
	list, err := h.accounts.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]userResponse, 0, len(list))
	for _, a := range list {
		items = append(items, sanitizeAccount(a))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"accounts": items})
}

func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Name     string `json:"name" validate:"required,max=200"`
		Password string `json:"password" validate:"required,min=8,max=128"`
		Role     string `json:"role" validate:"required,oneof=admin operator viewer"`
	}
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	role, err := domain.ParseRole(body.Role)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Rol inválido")
		return
	}
	hash, err := h.hasher.Hash(body.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("hash password")
		writeDomainErr(w, err)
		return
	}
	now := time.Now()
	account := &domain.Account{
		ID:           domain.NewAccountID(uuid.New()),
		Email:        SanitizeEmail(body.Email),
		Name:         body.Name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.accounts.Create(r.Context(), account); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sanitizeAccount(account))
}

// SetPassword replaces an account's credential with a freshly salted hash.
func (h *AccountsHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body struct {
		Password string `json:"password" validate:"required,min=8,max=128"`
	}
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	hash, err := h.hasher.Hash(body.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("hash password")
		writeDomainErr(w, err)
		return
	}
	if err := h.accounts.UpdatePassword(r.Context(), domain.NewAccountID(id), hash); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
