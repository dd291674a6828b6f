package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
)

// announcementRepository implements the AnnouncementRepository interface
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) repositories.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create persists a new announcement
func (r *announcementRepository) Create(ctx context.Context, announcement *entities.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

// ListAll retrieves every announcement, newest first
func (r *announcementRepository) ListAll(ctx context.Context) ([]*entities.Announcement, error) {
	var announcements []*entities.Announcement
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&announcements).Error
	return announcements, err
}
