package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
)

// roomRequestRepository implements the RoomRequestRepository interface
type roomRequestRepository struct {
	db *gorm.DB
}

// NewRoomRequestRepository creates a new room request repository
func NewRoomRequestRepository(db *gorm.DB) repositories.RoomRequestRepository {
	return &roomRequestRepository{db: db}
}

// Create persists a new room request
func (r *roomRequestRepository) Create(ctx context.Context, request *entities.RoomRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// FindByID retrieves a room request by its ID
func (r *roomRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.RoomRequest, error) {
	var request entities.RoomRequest
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("id = ?", id).
		First(&request).Error

	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List retrieves room requests matching the filters in insertion order
func (r *roomRequestRepository) List(ctx context.Context, filters repositories.RoomRequestFilters) ([]*entities.RoomRequest, error) {
	var requests []*entities.RoomRequest

	query := r.db.WithContext(ctx).Model(&entities.RoomRequest{}).Preload("Requester")

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}

	err := query.Order("created_at ASC").Find(&requests).Error
	return requests, err
}

// CountActiveByUser counts a user's pending or accepted requests
func (r *roomRequestRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.RoomRequest{}).
		Where("user_id = ? AND status IN ?", userID,
			[]entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusAccepted}).
		Count(&count).Error
	return count, err
}

// ApplyDecision transitions a request out of pending with a conditional
// update. The status guard makes concurrent decisions race-safe: only one
// writer can move a given request out of pending.
func (r *roomRequestRepository) ApplyDecision(ctx context.Context, id uuid.UUID, decision repositories.RoomRequestDecision) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.RoomRequest{}).
		Where("id = ? AND status = ?", id, entities.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":         decision.Status,
			"admin_response": decision.AdminResponse,
			"decided_by":     decision.DecidedBy,
			"decided_at":     decision.DecidedAt,
		})
	return res.RowsAffected, res.Error
}
