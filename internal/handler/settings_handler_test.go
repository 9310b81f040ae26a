package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/middleware"
	"github.com/analog-mfg/factory-ops-api/internal/models"
)

type fakeSettingsSrv struct {
	lastEmail string
	settings  *models.Settings
	err       error
}

func (f *fakeSettingsSrv) Get(ctx context.Context, email string) (*models.Settings, error) {
	f.lastEmail = email
	return f.settings, f.err
}

func (f *fakeSettingsSrv) Save(ctx context.Context, email string, req dto.SaveSettingsRequest) (*models.Settings, error) {
	f.lastEmail = email
	return &models.Settings{UserEmail: email, DarkMode: req.DarkMode}, f.err
}

func TestSettingsHandlerUsesClaimsEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSettingsSrv{settings: &models.Settings{UserEmail: "user@factory.test"}}
	handler := NewSettingsHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/settings", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{Email: "user@factory.test"})

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@factory.test", srv.lastEmail)
}

func TestSettingsHandlerRejectsMissingClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSettingsHandler(&fakeSettingsSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/settings", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSettingsHandlerSave(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeSettingsSrv{}
	handler := NewSettingsHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(`{"darkMode":true}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserKey, &models.JWTClaims{Email: "user@factory.test"})

	handler.Save(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@factory.test", srv.lastEmail)
	assert.Contains(t, rec.Body.String(), `"darkMode":true`)
}
