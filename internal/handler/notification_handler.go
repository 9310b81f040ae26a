package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
	"github.com/analog-mfg/factory-ops-api/pkg/response"
)

type notificationReader interface {
	List(ctx context.Context, limit int) ([]models.Notification, error)
}

// NotificationHandler serves the append-only notification feed.
type NotificationHandler struct {
	service notificationReader
}

// NewNotificationHandler creates a new handler.
func NewNotificationHandler(svc notificationReader) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// List godoc
// @Summary List notifications, newest first
// @Tags Notifications
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	notifications, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notifications)
}
