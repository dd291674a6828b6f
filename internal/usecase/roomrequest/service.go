package roomrequest

import (
	"context"

	"github.com/google/uuid"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
)

// Service defines the interface for the room request use case
type Service interface {
	// Create submits a new room request on behalf of a student
	Create(ctx context.Context, input CreateInput) (*entities.RoomRequest, error)

	// Decide transitions a pending request to accepted or rejected
	Decide(ctx context.Context, input DecideInput) (*entities.RoomRequest, error)

	// ListPending retrieves all pending requests in submission order
	ListPending(ctx context.Context) ([]*entities.RoomRequest, error)

	// ListAccepted retrieves all accepted requests
	ListAccepted(ctx context.Context) ([]*entities.RoomRequest, error)

	// ListByRequester retrieves all of a user's requests, any status
	ListByRequester(ctx context.Context, userID uuid.UUID) ([]*entities.RoomRequest, error)

	// ListAll retrieves every request for the administrative view
	ListAll(ctx context.Context) ([]*entities.RoomRequest, error)
}

// Ensure RoomRequestService implements Service interface
var _ Service = (*RoomRequestService)(nil)
