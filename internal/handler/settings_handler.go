package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/middleware"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
	"github.com/analog-mfg/factory-ops-api/pkg/response"
)

type settingsService interface {
	Get(ctx context.Context, email string) (*models.Settings, error)
	Save(ctx context.Context, email string, req dto.SaveSettingsRequest) (*models.Settings, error)
}

// SettingsHandler wires the per-user preference endpoints. The owning user is
// always taken from the JWT claims, never from the payload.
type SettingsHandler struct {
	service settingsService
}

// NewSettingsHandler creates a new handler.
func NewSettingsHandler(svc settingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// Get godoc
// @Summary Fetch the caller's settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	email, ok := claimsEmail(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	settings, err := h.service.Get(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// Save godoc
// @Summary Create or overwrite the caller's settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.SaveSettingsRequest true "Settings payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings [post]
func (h *SettingsHandler) Save(c *gin.Context) {
	email, ok := claimsEmail(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid settings payload"))
		return
	}

	settings, err := h.service.Save(c.Request.Context(), email, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

func claimsEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return "", false
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return "", false
	}
	return claims.Email, true
}
