package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type mockSettingsRepo struct {
	rows map[string]*models.Settings
}

func (m *mockSettingsRepo) Get(ctx context.Context, email string) (*models.Settings, error) {
	if row, ok := m.rows[email]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockSettingsRepo) Upsert(ctx context.Context, settings *models.Settings) error {
	if m.rows == nil {
		m.rows = make(map[string]*models.Settings)
	}
	cp := *settings
	m.rows[settings.UserEmail] = &cp
	return nil
}

func TestSettingsGetNotFound(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{}, zap.NewNop())

	_, err := svc.Get(context.Background(), "user@factory.test")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestSettingsSaveThenGet(t *testing.T) {
	repo := &mockSettingsRepo{}
	svc := NewSettingsService(repo, zap.NewNop())

	saved, err := svc.Save(context.Background(), "user@factory.test", dto.SaveSettingsRequest{
		DarkMode:          true,
		PushNotifications: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "user@factory.test", saved.UserEmail)

	fetched, err := svc.Get(context.Background(), "user@factory.test")
	require.NoError(t, err)
	assert.True(t, fetched.DarkMode)
	assert.True(t, fetched.PushNotifications)
	assert.False(t, fetched.AutoLogout)
}

func TestSettingsSaveOverwrites(t *testing.T) {
	repo := &mockSettingsRepo{}
	svc := NewSettingsService(repo, zap.NewNop())

	_, err := svc.Save(context.Background(), "user@factory.test", dto.SaveSettingsRequest{DarkMode: true})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), "user@factory.test", dto.SaveSettingsRequest{AutoLogout: true})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), "user@factory.test")
	require.NoError(t, err)
	assert.False(t, fetched.DarkMode)
	assert.True(t, fetched.AutoLogout)
	assert.Len(t, repo.rows, 1)
}
