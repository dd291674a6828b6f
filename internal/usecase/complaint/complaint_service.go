package complaint

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
)

// ComplaintService handles complaint business logic
type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo repositories.ComplaintRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo}
}

// CreateInput represents input for filing a complaint
type CreateInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
}

// Create files a new complaint
func (s *ComplaintService) Create(ctx context.Context, input CreateInput) (*entities.Complaint, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, usecaseErrors.ErrMissingRequiredField
	}

	complaint := &entities.Complaint{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Title:       title,
		Description: description,
		Status:      entities.ComplaintStatusPending,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return complaint, nil
}

// ListAll retrieves every complaint for the admin view
func (s *ComplaintService) ListAll(ctx context.Context) ([]*entities.Complaint, error) {
	complaints, err := s.complaintRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// ListByUser retrieves a user's complaints
func (s *ComplaintService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Complaint, error) {
	complaints, err := s.complaintRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// UpdateStatus moves a complaint along pending -> in_progress -> resolved.
// Resolved complaints are closed; further updates conflict.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ComplaintStatus) (*entities.Complaint, error) {
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidComplaintStatus
	}

	affected, err := s.complaintRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update complaint status: %w", err)
	}

	if affected == 0 {
		if _, err := s.complaintRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, usecaseErrors.ErrComplaintNotFound
			}
			return nil, fmt.Errorf("failed to get complaint: %w", err)
		}
		return nil, usecaseErrors.ErrComplaintAlreadyResolved
	}

	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload complaint: %w", err)
	}
	return complaint, nil
}
