package complaint

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
)

type fakeComplaintRepo struct {
	complaints map[uuid.UUID]*entities.Complaint
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[uuid.UUID]*entities.Complaint)}
}

func (r *fakeComplaintRepo) Create(_ context.Context, complaint *entities.Complaint) error {
	r.complaints[complaint.ID] = complaint
	return nil
}

func (r *fakeComplaintRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Complaint, error) {
	complaint, ok := r.complaints[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return complaint, nil
}

func (r *fakeComplaintRepo) ListAll(_ context.Context) ([]*entities.Complaint, error) {
	var out []*entities.Complaint
	for _, complaint := range r.complaints {
		out = append(out, complaint)
	}
	return out, nil
}

func (r *fakeComplaintRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Complaint, error) {
	var out []*entities.Complaint
	for _, complaint := range r.complaints {
		if complaint.UserID == userID {
			out = append(out, complaint)
		}
	}
	return out, nil
}

func (r *fakeComplaintRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ComplaintStatus) (int64, error) {
	complaint, ok := r.complaints[id]
	if !ok || complaint.IsResolved() {
		return 0, nil
	}
	complaint.Status = status
	return 1, nil
}

func TestCreateComplaint_TrimsAndDefaultsPending(t *testing.T) {
	svc := NewComplaintService(newFakeComplaintRepo())

	complaint, err := svc.Create(context.Background(), CreateInput{
		UserID:      uuid.New(),
		Title:       "  Broken tap  ",
		Description: "Second floor bathroom tap leaks.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if complaint.Title != "Broken tap" {
		t.Fatalf("title not trimmed: %q", complaint.Title)
	}
	if complaint.Status != entities.ComplaintStatusPending {
		t.Fatalf("expected pending, got %s", complaint.Status)
	}
}

func TestCreateComplaint_RequiresFields(t *testing.T) {
	svc := NewComplaintService(newFakeComplaintRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		UserID: uuid.New(),
		Title:  "   ",
	})
	if !errors.Is(err, usecaseErrors.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestUpdateComplaintStatus_Lifecycle(t *testing.T) {
	repo := newFakeComplaintRepo()
	svc := NewComplaintService(repo)

	complaint, err := svc.Create(context.Background(), CreateInput{
		UserID:      uuid.New(),
		Title:       "Broken tap",
		Description: "Second floor bathroom tap leaks.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), complaint.ID, entities.ComplaintStatusInProgress)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != entities.ComplaintStatusInProgress {
		t.Fatalf("expected in_progress, got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), complaint.ID, entities.ComplaintStatusResolved); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	// Resolved complaints are closed
	_, err = svc.UpdateStatus(context.Background(), complaint.ID, entities.ComplaintStatusInProgress)
	if !errors.Is(err, usecaseErrors.ErrComplaintAlreadyResolved) {
		t.Fatalf("expected ErrComplaintAlreadyResolved, got %v", err)
	}
}

func TestUpdateComplaintStatus_NotFound(t *testing.T) {
	svc := NewComplaintService(newFakeComplaintRepo())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), entities.ComplaintStatusResolved)
	if !errors.Is(err, usecaseErrors.ErrComplaintNotFound) {
		t.Fatalf("expected ErrComplaintNotFound, got %v", err)
	}
}

func TestUpdateComplaintStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewComplaintService(newFakeComplaintRepo())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), entities.ComplaintStatus("bogus"))
	if !errors.Is(err, usecaseErrors.ErrInvalidComplaintStatus) {
		t.Fatalf("expected ErrInvalidComplaintStatus, got %v", err)
	}
}
