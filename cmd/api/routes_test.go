package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/handler"
	"github.com/analog-mfg/factory-ops-api/internal/middleware"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	"github.com/analog-mfg/factory-ops-api/internal/service"
)

const routesTestSecret = "routes-test-secret"

type stubLogisticsService struct{}

func (stubLogisticsService) SubmitRequest(ctx context.Context, req dto.SubmitModuleRequest) (*models.ModuleRequest, error) {
	return &models.ModuleRequest{ID: "req-1", Module: req.Module, Status: "Pending"}, nil
}

func (stubLogisticsService) ListRequests(ctx context.Context) ([]models.ModuleRequest, error) {
	return nil, nil
}

func (stubLogisticsService) ListTracking(ctx context.Context) ([]models.TrackingLog, error) {
	return nil, nil
}

func (stubLogisticsService) UpdateTrackingStatus(ctx context.Context, req dto.UpdateTrackingRequest) error {
	return nil
}

type stubSettingsService struct{}

func (stubSettingsService) Get(ctx context.Context, email string) (*models.Settings, error) {
	return &models.Settings{UserEmail: email}, nil
}

func (stubSettingsService) Save(ctx context.Context, email string, req dto.SaveSettingsRequest) (*models.Settings, error) {
	return &models.Settings{UserEmail: email}, nil
}

// newTestRouter wires only the routes the tests hit; the remaining handlers
// are never invoked.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authSvc := service.NewAuthService(nil, nil, nil, validator.New(), zap.NewNop(), service.AuthConfig{
		JWTSecret: routesTestSecret,
		TokenTTL:  time.Hour,
	})

	r := gin.New()
	registerAPIRoutes(r, "/api", apiHandlers{
		auth:         handler.NewAuthHandler(nil),
		logistics:    handler.NewLogisticsHandler(stubLogisticsService{}),
		production:   handler.NewProductionHandler(nil),
		workOrder:    handler.NewWorkOrderHandler(nil),
		dashboard:    handler.NewDashboardHandler(nil),
		report:       handler.NewReportHandler(nil),
		user:         handler.NewUserHandler(nil, 1<<20),
		settings:     handler.NewSettingsHandler(stubSettingsService{}),
		notification: handler.NewNotificationHandler(nil),
	}, middleware.JWT(authSvc))
	return r
}

func signRoutesToken(t *testing.T, email string) string {
	t.Helper()
	claims := &models.JWTClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(routesTestSecret))
	require.NoError(t, err)
	return token
}

func TestDomainRoutesAcceptUnauthenticatedRequests(t *testing.T) {
	r := newTestRouter()

	body := `{"module":"Conveyor","requestedBy":"ops","recipient":"Plant 2","requestDate":"2026-08-01","quantity":4}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logistics", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSettingsRequireToken(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSettingsAcceptValidToken(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.Header.Set("Authorization", "Bearer "+signRoutesToken(t, "ops@factory.test"))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ops@factory.test")
}
