package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
)

// complaintRepository implements the ComplaintRepository interface
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) repositories.ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create persists a new complaint
func (r *complaintRepository) Create(ctx context.Context, complaint *entities.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// FindByID retrieves a complaint by ID
func (r *complaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Complaint, error) {
	var complaint entities.Complaint
	err := r.db.WithContext(ctx).
		Preload("Reporter").
		Where("id = ?", id).
		First(&complaint).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListAll retrieves every complaint, newest first
func (r *complaintRepository) ListAll(ctx context.Context) ([]*entities.Complaint, error) {
	var complaints []*entities.Complaint
	err := r.db.WithContext(ctx).
		Preload("Reporter").
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

// ListByUser retrieves a user's complaints, newest first
func (r *complaintRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Complaint, error) {
	var complaints []*entities.Complaint
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

// UpdateStatus moves a complaint to a new status unless it is already resolved
func (r *complaintRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ComplaintStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Complaint{}).
		Where("id = ? AND status <> ?", id, entities.ComplaintStatusResolved).
		Update("status", status)
	return res.RowsAffected, res.Error
}
