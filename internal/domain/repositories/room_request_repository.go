package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
)

// RoomRequestFilters narrows room request listings.
type RoomRequestFilters struct {
	Status *entities.RequestStatus
	UserID *uuid.UUID
}

// RoomRequestDecision carries the fields written by a status transition.
type RoomRequestDecision struct {
	Status        entities.RequestStatus
	AdminResponse datatypes.JSON
	DecidedBy     uuid.UUID
	DecidedAt     time.Time
}

// RoomRequestRepository defines the interface for room request data access
type RoomRequestRepository interface {
	// Create persists a new room request
	Create(ctx context.Context, request *entities.RoomRequest) error

	// FindByID finds a room request by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.RoomRequest, error)

	// List retrieves room requests matching the filters, oldest first
	List(ctx context.Context, filters RoomRequestFilters) ([]*entities.RoomRequest, error)

	// CountActiveByUser counts a user's pending or accepted requests
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ApplyDecision conditionally transitions a pending request to a
	// terminal status. Returns the number of rows affected: zero means the
	// request either does not exist or was already decided.
	ApplyDecision(ctx context.Context, id uuid.UUID, decision RoomRequestDecision) (int64, error)
}
