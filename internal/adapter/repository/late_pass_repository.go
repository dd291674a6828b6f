package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
)

// latePassRepository implements the LatePassRepository interface
type latePassRepository struct {
	db *gorm.DB
}

// NewLatePassRepository creates a new late pass repository
func NewLatePassRepository(db *gorm.DB) repositories.LatePassRepository {
	return &latePassRepository{db: db}
}

// Create persists a new late pass request
func (r *latePassRepository) Create(ctx context.Context, pass *entities.LatePass) error {
	return r.db.WithContext(ctx).Create(pass).Error
}

// FindByID retrieves a late pass by ID
func (r *latePassRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.LatePass, error) {
	var pass entities.LatePass
	err := r.db.WithContext(ctx).
		Preload("Holder").
		Where("id = ?", id).
		First(&pass).Error
	if err != nil {
		return nil, err
	}
	return &pass, nil
}

// ListAll retrieves every late pass, newest first
func (r *latePassRepository) ListAll(ctx context.Context) ([]*entities.LatePass, error) {
	var passes []*entities.LatePass
	err := r.db.WithContext(ctx).
		Preload("Holder").
		Order("created_at DESC").
		Find(&passes).Error
	return passes, err
}

// ListByUser retrieves a user's late passes, newest first
func (r *latePassRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LatePass, error) {
	var passes []*entities.LatePass
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&passes).Error
	return passes, err
}

// UpdateStatus moves a pending late pass to a terminal status
func (r *latePassRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LatePassStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.LatePass{}).
		Where("id = ? AND status = ?", id, entities.LatePassStatusPending).
		Update("status", status)
	return res.RowsAffected, res.Error
}
