package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
)

// LatePassRepository defines the interface for late pass data access
type LatePassRepository interface {
	// Create persists a new late pass request
	Create(ctx context.Context, pass *entities.LatePass) error

	// FindByID finds a late pass by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.LatePass, error)

	// ListAll retrieves every late pass, newest first
	ListAll(ctx context.Context) ([]*entities.LatePass, error)

	// ListByUser retrieves a user's late passes, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LatePass, error)

	// UpdateStatus conditionally moves a pending late pass to a terminal
	// status. Returns rows affected; zero means missing or already decided.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LatePassStatus) (int64, error)
}
