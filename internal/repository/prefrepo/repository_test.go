package prefrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/cache"
	"partshub/internal/pkg/logger"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
func (m *MockCache) GetInt(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}
func (m *MockCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}
func (m *MockCache) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
func (m *MockCache) Close() error { return nil }

func TestGetTheme_DefaultWhenMissing(t *testing.T) {
	repo := NewPreferenceRepository(cache.NewMemoryClient(), time.Second, logger.NewNop())

	theme, err := repo.GetTheme(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestSaveAndGetTheme(t *testing.T) {
	repo := NewPreferenceRepository(cache.NewMemoryClient(), time.Second, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.SaveTheme(ctx, domain.ThemeLight))
	theme, err := repo.GetTheme(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestGetTheme_UnknownValueFallsBack(t *testing.T) {
	client := cache.NewMemoryClient()
	require.NoError(t, client.Set(context.Background(), ThemeKey, "sepia", 0))
	repo := NewPreferenceRepository(client, time.Second, logger.NewNop())

	theme, err := repo.GetTheme(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTheme, theme)
}

func TestGetTheme_CacheFailure(t *testing.T) {
	m := new(MockCache)
	m.On("Get", mock.Anything, ThemeKey).Return("", errors.New("conexão recusada"))
	repo := NewPreferenceRepository(m, time.Second, logger.NewNop())

	theme, err := repo.GetTheme(context.Background())

	assert.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
	assert.Equal(t, domain.DefaultTheme, theme)
	m.AssertExpectations(t)
}

func TestSaveTheme_CacheFailure(t *testing.T) {
	m := new(MockCache)
	m.On("Set", mock.Anything, ThemeKey, "light", time.Duration(0)).Return(errors.New("timeout"))
	repo := NewPreferenceRepository(m, time.Second, logger.NewNop())

	err := repo.SaveTheme(context.Background(), domain.ThemeLight)

	assert.IsType(t, &apperror.InternalError{}, err)
	m.AssertExpectations(t)
}
