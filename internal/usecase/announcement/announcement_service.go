package announcement

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
)

// AnnouncementService handles announcement business logic
type AnnouncementService struct {
	announcementRepo repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcementRepo repositories.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

// CreateInput represents input for publishing an announcement
type CreateInput struct {
	Title       string
	Description string
	CreatedBy   uuid.UUID
}

// Create publishes a new announcement
func (s *AnnouncementService) Create(ctx context.Context, input CreateInput) (*entities.Announcement, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, usecaseErrors.ErrMissingRequiredField
	}

	announcement := &entities.Announcement{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return announcement, nil
}

// ListAll retrieves every announcement, newest first
func (s *AnnouncementService) ListAll(ctx context.Context) ([]*entities.Announcement, error) {
	announcements, err := s.announcementRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}
