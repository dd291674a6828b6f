package repositories

import (
	"context"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
)

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	// Create persists a new announcement
	Create(ctx context.Context, announcement *entities.Announcement) error

	// ListAll retrieves every announcement, newest first
	ListAll(ctx context.Context) ([]*entities.Announcement, error)
}
