package sessionservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/logger"
)

// SessionStore define o que o Serviço de Sessão espera do store.
type SessionStore interface {
	Role() domain.Role
	SetRole(role domain.Role)
	Theme() domain.Theme
	SetTheme(theme domain.Theme)
	ToggleTheme() domain.Theme
}

// PreferenceRepository persiste o tema entre reinícios.
type PreferenceRepository interface {
	GetTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}

// TokenService emite o token que carrega o papel escolhido.
type TokenService interface {
	GenerateToken(sessionID string, role domain.Role) (string, error)
}

// Service implementa a escolha de papel e a preferência de tema.
type Service struct {
	store  SessionStore
	prefs  PreferenceRepository
	tokens TokenService
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Sessão.
func NewService(store SessionStore, prefs PreferenceRepository, tokens TokenService, logger logger.Logger) *Service {
	return &Service{store: store, prefs: prefs, tokens: tokens, logger: logger}
}

// SelectRole ativa o papel e devolve um token de sessão assinado com ele.
func (s *Service) SelectRole(ctx context.Context, req domain.SessionRequest) (domain.Session, error) {
	if !req.Role.Valid() {
		return domain.Session{}, apperror.NewValidationError(fmt.Sprintf("Papel inválido: %q. Use retailer, garage ou wholesaler.", req.Role))
	}

	sessionID := uuid.NewString()
	tok, err := s.tokens.GenerateToken(sessionID, req.Role)
	if err != nil {
		s.logger.Error("Falha ao gerar token de sessão.", err)
		return domain.Session{}, apperror.NewInternalError("Falha ao gerar token de sessão", err)
	}

	s.store.SetRole(req.Role)
	s.logger.Info("Papel selecionado.", map[string]interface{}{"role": req.Role, "session_id": sessionID})
	return domain.Session{Token: tok, Role: req.Role}, nil
}

// CurrentRole devolve o papel ativo (vazio se nenhum).
func (s *Service) CurrentRole(ctx context.Context) (domain.Role, error) {
	return s.store.Role(), nil
}

// ClearRole volta para a tela de escolha de papel.
func (s *Service) ClearRole(ctx context.Context) error {
	s.store.SetRole(domain.RoleNone)
	s.logger.Info("Papel limpo.", nil)
	return nil
}

// LoadTheme aplica no store o tema salvo; chamado na inicialização.
// Falha de leitura mantém o padrão.
func (s *Service) LoadTheme(ctx context.Context) domain.Theme {
	theme, err := s.prefs.GetTheme(ctx)
	if err != nil {
		s.logger.Warn("Falha ao carregar tema salvo; usando padrão.", map[string]interface{}{"error": err.Error()})
		theme = domain.DefaultTheme
	}
	s.store.SetTheme(theme)
	return s.store.Theme()
}

// GetTheme devolve o tema atual.
func (s *Service) GetTheme(ctx context.Context) (domain.Theme, error) {
	return s.store.Theme(), nil
}

// SetTheme grava o tema informado.
func (s *Service) SetTheme(ctx context.Context, theme domain.Theme) (domain.Theme, error) {
	if !theme.Valid() {
		return "", apperror.NewValidationError(fmt.Sprintf("Tema inválido: %q. Use light ou dark.", theme))
	}
	s.store.SetTheme(theme)
	s.persist(ctx, theme)
	return theme, nil
}

// ToggleTheme alterna o tema e persiste o novo valor.
func (s *Service) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	theme := s.store.ToggleTheme()
	s.persist(ctx, theme)
	return theme, nil
}

// persist grava o tema; a troca já valeu em memória, então falha só é logada.
func (s *Service) persist(ctx context.Context, theme domain.Theme) {
	if err := s.prefs.SaveTheme(context.WithoutCancel(ctx), theme); err != nil {
		s.logger.Error("Falha ao persistir tema.", err)
		return
	}
	s.logger.Debug("Tema persistido.", map[string]interface{}{"theme": theme})
}
