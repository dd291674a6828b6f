package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
)

// ReceiptRepository defines the interface for payment receipt data access
type ReceiptRepository interface {
	// Create persists a new receipt
	Create(ctx context.Context, receipt *entities.Receipt) error

	// FindByID finds a receipt by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Receipt, error)

	// ListAll retrieves every receipt, newest first
	ListAll(ctx context.Context) ([]*entities.Receipt, error)

	// ListByUser retrieves a user's receipts, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Receipt, error)

	// UpdateStatus conditionally moves a pending receipt to a terminal
	// status. Returns rows affected; zero means missing or already reviewed.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReceiptStatus) (int64, error)
}
