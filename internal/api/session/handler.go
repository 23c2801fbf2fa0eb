package session

import (
	"context"
	"net/http"

	"partshub/internal/api/response"
	"partshub/internal/domain"
	"partshub/internal/pkg/logger"
)

// SessionService define o contrato que o Handler espera da camada de Serviço.
type SessionService interface {
	SelectRole(ctx context.Context, req domain.SessionRequest) (domain.Session, error)
	CurrentRole(ctx context.Context) (domain.Role, error)
	ClearRole(ctx context.Context) error
	GetTheme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) (domain.Theme, error)
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}

// RoleResponse é o corpo de GET /v1/session.
type RoleResponse struct {
	Role domain.Role `json:"role"`
}

// ThemeBody é o corpo de entrada e saída das rotas de tema.
type ThemeBody struct {
	Theme domain.Theme `json:"theme"`
}

// Handler agrupa os handlers de sessão e tema.
type Handler struct {
	Service SessionService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc SessionService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// SelectRoleHandler lida com POST /v1/session.
// @Summary Escolhe o papel (retailer, garage, wholesaler)
// @Tags session
// @Accept json
// @Produce json
// @Param session body domain.SessionRequest true "Papel"
// @Success 201 {object} domain.Session
// @Failure 400 {object} domain.ErrorResponse
// @Router /session [post]
func (h *Handler) SelectRoleHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.SessionRequest
	if err := response.DecodeJSON(r, &req, false); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	session, err := h.Service.SelectRole(r.Context(), req)
	response.Handle(w, r, h.Logger, session, err, http.StatusCreated)
}

// CurrentRoleHandler lida com GET /v1/session.
// @Summary Papel ativo
// @Tags session
// @Produce json
// @Success 200 {object} RoleResponse
// @Router /session [get]
func (h *Handler) CurrentRoleHandler(w http.ResponseWriter, r *http.Request) {
	role, err := h.Service.CurrentRole(r.Context())
	response.Handle(w, r, h.Logger, RoleResponse{Role: role}, err, http.StatusOK)
}

// ClearRoleHandler lida com DELETE /v1/session.
// @Summary Volta à escolha de papel
// @Tags session
// @Success 204
// @Router /session [delete]
func (h *Handler) ClearRoleHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.ClearRole(r.Context())
	response.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// GetThemeHandler lida com GET /v1/theme.
// @Summary Tema atual
// @Tags session
// @Produce json
// @Success 200 {object} ThemeBody
// @Router /theme [get]
func (h *Handler) GetThemeHandler(w http.ResponseWriter, r *http.Request) {
	theme, err := h.Service.GetTheme(r.Context())
	response.Handle(w, r, h.Logger, ThemeBody{Theme: theme}, err, http.StatusOK)
}

// SetThemeHandler lida com PUT /v1/theme.
// @Summary Define o tema
// @Tags session
// @Accept json
// @Produce json
// @Param theme body ThemeBody true "light ou dark"
// @Success 200 {object} ThemeBody
// @Failure 400 {object} domain.ErrorResponse
// @Router /theme [put]
func (h *Handler) SetThemeHandler(w http.ResponseWriter, r *http.Request) {
	var body ThemeBody
	if err := response.DecodeJSON(r, &body, false); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	theme, err := h.Service.SetTheme(r.Context(), body.Theme)
	response.Handle(w, r, h.Logger, ThemeBody{Theme: theme}, err, http.StatusOK)
}

// ToggleThemeHandler lida com POST /v1/theme/toggle.
// @Summary Alterna entre claro e escuro
// @Tags session
// @Produce json
// @Success 200 {object} ThemeBody
// @Router /theme/toggle [post]
func (h *Handler) ToggleThemeHandler(w http.ResponseWriter, r *http.Request) {
	theme, err := h.Service.ToggleTheme(r.Context())
	response.Handle(w, r, h.Logger, ThemeBody{Theme: theme}, err, http.StatusOK)
}
