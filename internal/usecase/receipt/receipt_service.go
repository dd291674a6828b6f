package receipt

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

// ReceiptService handles payment receipt business logic
type ReceiptService struct {
	receiptRepo repositories.ReceiptRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repositories.ReceiptRepository) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo}
}

// CreateInput represents input for submitting a receipt
type CreateInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	AmountCents int64
	PaidOn      time.Time
}

// Create submits a payment receipt for review
func (s *ReceiptService) Create(ctx context.Context, input CreateInput) (*entities.Receipt, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.AmountCents <= 0 || input.PaidOn.IsZero() {
		return nil, usecaseErrors.ErrMissingRequiredField
	}

	receipt := &entities.Receipt{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		AmountCents: input.AmountCents,
		PaidOn:      input.PaidOn,
		Status:      entities.ReceiptStatusPending,
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}
	return receipt, nil
}

// ListAll retrieves every receipt for the admin view
func (s *ReceiptService) ListAll(ctx context.Context) ([]*entities.Receipt, error) {
	receipts, err := s.receiptRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nil
}

// ListByUser retrieves a user's receipts
func (s *ReceiptService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Receipt, error) {
	receipts, err := s.receiptRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nil
}

// UpdateStatus reviews a pending receipt. Reviewed receipts are final.
func (s *ReceiptService) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReceiptStatus) (*entities.Receipt, error) {
	if !status.IsTerminal() {
		return nil, usecaseErrors.ErrInvalidReceiptStatus
	}

	affected, err := s.receiptRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update receipt status: %w", err)
	}

	if affected == 0 {
		if _, err := s.receiptRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, usecaseErrors.ErrReceiptNotFound
			}
			return nil, fmt.Errorf("failed to get receipt: %w", err)
		}
		return nil, usecaseErrors.ErrReceiptAlreadyReviewed
	}

	receipt, err := s.receiptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload receipt: %w", err)
	}
	return receipt, nil
}
