package receipt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
)

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*entities.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]*entities.Receipt)}
}

func (r *fakeReceiptRepo) Create(_ context.Context, receipt *entities.Receipt) error {
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *fakeReceiptRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Receipt, error) {
	receipt, ok := r.receipts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return receipt, nil
}

func (r *fakeReceiptRepo) ListAll(_ context.Context) ([]*entities.Receipt, error) {
	var out []*entities.Receipt
	for _, receipt := range r.receipts {
		out = append(out, receipt)
	}
	return out, nil
}

func (r *fakeReceiptRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Receipt, error) {
	var out []*entities.Receipt
	for _, receipt := range r.receipts {
		if receipt.UserID == userID {
			out = append(out, receipt)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ReceiptStatus) (int64, error) {
	receipt, ok := r.receipts[id]
	if !ok || receipt.Status != entities.ReceiptStatusPending {
		return 0, nil
	}
	receipt.Status = status
	return 1, nil
}

func submitReceipt(t *testing.T, svc *ReceiptService) *entities.Receipt {
	t.Helper()
	receipt, err := svc.Create(context.Background(), CreateInput{
		UserID:      uuid.New(),
		Title:       "October hostel fee",
		AmountCents: 250000,
		PaidOn:      time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return receipt
}

func TestCreateReceipt_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		UserID:      uuid.New(),
		Title:       "October hostel fee",
		AmountCents: 0,
		PaidOn:      time.Now(),
	})
	if !errors.Is(err, usecaseErrors.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestUpdateReceiptStatus_ReviewIsFinal(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo())
	receipt := submitReceipt(t, svc)

	approved, err := svc.UpdateStatus(context.Background(), receipt.ID, entities.ReceiptStatusApproved)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != entities.ReceiptStatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}

	_, err = svc.UpdateStatus(context.Background(), receipt.ID, entities.ReceiptStatusRejected)
	if !errors.Is(err, usecaseErrors.ErrReceiptAlreadyReviewed) {
		t.Fatalf("expected ErrReceiptAlreadyReviewed, got %v", err)
	}
}

func TestUpdateReceiptStatus_RejectsPendingAsTarget(t *testing.T) {
	svc := NewReceiptService(newFakeReceiptRepo())
	receipt := submitReceipt(t, svc)

	_, err := svc.UpdateStatus(context.Background(), receipt.ID, entities.ReceiptStatusPending)
	if !errors.Is(err, usecaseErrors.ErrInvalidReceiptStatus) {
		t.Fatalf("expected ErrInvalidReceiptStatus, got %v", err)
	}
}
