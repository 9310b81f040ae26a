package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
	"github.com/analog-mfg/factory-ops-api/pkg/response"
)

type userService interface {
	GetProfile(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (*models.User, error)
	UploadPicture(ctx context.Context, originalName string, r io.Reader) (*dto.UploadResponse, error)
}

// UserHandler wires profile endpoints.
type UserHandler struct {
	service       userService
	maxUploadSize int64
}

// NewUserHandler creates a new handler. maxUploadSize bounds profile picture
// uploads in bytes.
func NewUserHandler(svc userService, maxUploadSize int64) *UserHandler {
	return &UserHandler{service: svc, maxUploadSize: maxUploadSize}
}

// GetProfile godoc
// @Summary Fetch a user profile by email
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /user/{email} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.service.GetProfile(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update a user profile by email
// @Tags Users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param payload body dto.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /user/{email} [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Upload godoc
// @Summary Upload a profile picture
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param profilePicture formData file true "Profile picture file"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /upload [post]
func (h *UserHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "profile picture file is required"))
		return
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "profile picture exceeds maximum upload size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
		return
	}
	defer file.Close()

	res, err := h.service.UploadPicture(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}
