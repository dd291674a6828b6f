package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
)

// ComplaintRepository defines the interface for complaint data access
type ComplaintRepository interface {
	// Create persists a new complaint
	Create(ctx context.Context, complaint *entities.Complaint) error

	// FindByID finds a complaint by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Complaint, error)

	// ListAll retrieves every complaint, newest first
	ListAll(ctx context.Context) ([]*entities.Complaint, error)

	// ListByUser retrieves a user's complaints, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Complaint, error)

	// UpdateStatus conditionally moves a complaint out of a non-resolved
	// status. Returns rows affected; zero means missing or already resolved.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ComplaintStatus) (int64, error)
}
