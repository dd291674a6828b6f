package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
)

// receiptRepository implements the ReceiptRepository interface
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) repositories.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create persists a new receipt
func (r *receiptRepository) Create(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

// FindByID retrieves a receipt by ID
func (r *receiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Receipt, error) {
	var receipt entities.Receipt
	err := r.db.WithContext(ctx).
		Preload("Payer").
		Where("id = ?", id).
		First(&receipt).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListAll retrieves every receipt, newest first
func (r *receiptRepository) ListAll(ctx context.Context) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	err := r.db.WithContext(ctx).
		Preload("Payer").
		Order("created_at DESC").
		Find(&receipts).Error
	return receipts, err
}

// ListByUser retrieves a user's receipts, newest first
func (r *receiptRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&receipts).Error
	return receipts, err
}

// UpdateStatus moves a pending receipt to a terminal status
func (r *receiptRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReceiptStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Receipt{}).
		Where("id = ? AND status = ?", id, entities.ReceiptStatusPending).
		Update("status", status)
	return res.RowsAffected, res.Error
}
