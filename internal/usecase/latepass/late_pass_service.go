package latepass

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
)

// LatePassService handles late pass business logic
type LatePassService struct {
	latePassRepo repositories.LatePassRepository
}

// NewLatePassService creates a new late pass service
func NewLatePassService(latePassRepo repositories.LatePassRepository) *LatePassService {
	return &LatePassService{latePassRepo: latePassRepo}
}

// CreateInput represents input for requesting a late pass
type CreateInput struct {
	UserID        uuid.UUID
	Reason        string
	DepartureDate time.Time
	DepartureTime string
}

// Create requests a new late pass
func (s *LatePassService) Create(ctx context.Context, input CreateInput) (*entities.LatePass, error) {
	reason := strings.TrimSpace(input.Reason)
	departureTime := strings.TrimSpace(input.DepartureTime)
	if reason == "" || departureTime == "" || input.DepartureDate.IsZero() {
		return nil, usecaseErrors.ErrMissingRequiredField
	}

	pass := &entities.LatePass{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Reason:        reason,
		DepartureDate: input.DepartureDate,
		DepartureTime: departureTime,
		Status:        entities.LatePassStatusPending,
	}

	if err := s.latePassRepo.Create(ctx, pass); err != nil {
		return nil, fmt.Errorf("failed to create late pass: %w", err)
	}
	return pass, nil
}

// ListAll retrieves every late pass for the admin view
func (s *LatePassService) ListAll(ctx context.Context) ([]*entities.LatePass, error) {
	passes, err := s.latePassRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list late passes: %w", err)
	}
	return passes, nil
}

// ListByUser retrieves a user's late passes
func (s *LatePassService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LatePass, error) {
	passes, err := s.latePassRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list late passes: %w", err)
	}
	return passes, nil
}

// UpdateStatus decides a pending late pass. Decided passes are final.
func (s *LatePassService) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LatePassStatus) (*entities.LatePass, error) {
	if !status.IsTerminal() {
		return nil, usecaseErrors.ErrInvalidLatePassStatus
	}

	affected, err := s.latePassRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update late pass status: %w", err)
	}

	if affected == 0 {
		if _, err := s.latePassRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, usecaseErrors.ErrLatePassNotFound
			}
			return nil, fmt.Errorf("failed to get late pass: %w", err)
		}
		return nil, usecaseErrors.ErrLatePassAlreadyDecided
	}

	pass, err := s.latePassRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload late pass: %w", err)
	}
	return pass, nil
}
