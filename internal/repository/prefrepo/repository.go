package prefrepo

import (
	"context"
	"errors"
	"time"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/cache"
	"partshub/internal/pkg/logger"
)

// ThemeKey é a chave da preferência de tema no cache.
const ThemeKey = "pref:theme"

// PreferenceRepository persiste as preferências do usuário no cache (Redis ou memória).
type PreferenceRepository struct {
	cache        cache.Client
	cacheTimeout time.Duration
	logger       logger.Logger
}

// NewPreferenceRepository cria o repositório.
func NewPreferenceRepository(client cache.Client, cacheTimeout time.Duration, logger logger.Logger) *PreferenceRepository {
	return &PreferenceRepository{cache: client, cacheTimeout: cacheTimeout, logger: logger}
}

// GetTheme lê o tema salvo. Sem valor salvo, ou com valor desconhecido, devolve o padrão.
func (r *PreferenceRepository) GetTheme(ctx context.Context) (domain.Theme, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.cacheTimeout)
	defer cancel()

	val, err := r.cache.Get(ctxTimeout, ThemeKey)
	if errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Debug("Nenhum tema salvo; usando padrão.", map[string]interface{}{"theme": domain.DefaultTheme})
		return domain.DefaultTheme, nil
	}
	if err != nil {
		return domain.DefaultTheme, apperror.NewInternalError("Falha ao ler tema do cache", err)
	}

	theme := domain.Theme(val)
	if !theme.Valid() {
		r.logger.Warn("Tema salvo desconhecido; usando padrão.", map[string]interface{}{"value": val})
		return domain.DefaultTheme, nil
	}
	return theme, nil
}

// SaveTheme grava o tema sem expiração.
func (r *PreferenceRepository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.cacheTimeout)
	defer cancel()

	if err := r.cache.Set(ctxTimeout, ThemeKey, string(theme), 0); err != nil {
		return apperror.NewInternalError("Falha ao gravar tema no cache", err)
	}
	r.logger.Debug("Tema salvo.", map[string]interface{}{"theme": theme})
	return nil
}
