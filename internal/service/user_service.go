package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type userProfileRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
}

type fileStore interface {
	SaveStream(filename string, r io.Reader) error
}

// UserService handles profile reads, profile updates and picture uploads.
type UserService struct {
	repo      userProfileRepository
	store     fileStore
	notify    notifier
	logger    *zap.Logger
	publicURL string
}

// NewUserService constructs a UserService. publicURL is the externally
// reachable base under which uploaded files are served.
func NewUserService(repo userProfileRepository, store fileStore, notify notifier, logger *zap.Logger, publicURL string) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, store: store, notify: notify, logger: logger, publicURL: strings.TrimRight(publicURL, "/")}
}

// GetProfile returns the account for an email.
func (s *UserService) GetProfile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "User not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to look up user")
	}
	return user, nil
}

// UpdateProfile replaces the mutable profile fields of the account.
func (s *UserService) UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Birthday = req.Birthday
	user.Address = req.Address
	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to update profile")
	}

	if s.notify != nil {
		s.notify.Notify(ctx, fmt.Sprintf("User profile updated: %s", user.Email))
	}
	return user, nil
}

// UploadPicture stores a profile image and returns its public URL. The stored
// filename is randomised; the original name only contributes its extension.
func (s *UserService) UploadPicture(ctx context.Context, originalName string, r io.Reader) (*dto.UploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported image type")
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	if err := s.store.SaveStream(filename, r); err != nil {
		s.logger.Error("profile picture save failed", zap.String("filename", filename), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to store image")
	}

	return &dto.UploadResponse{ImageURL: fmt.Sprintf("%s/uploads/%s", s.publicURL, filename)}, nil
}
