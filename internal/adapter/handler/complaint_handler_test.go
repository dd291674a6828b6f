package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	complaintUsecase "github.com/hosteldesk/hosteldesk/internal/usecase/complaint"
)

// fakeComplaintRepo serves complaints from an in-memory slice
type fakeComplaintRepo struct {
	complaints []*entities.Complaint
}

func (r *fakeComplaintRepo) Create(_ context.Context, complaint *entities.Complaint) error {
	r.complaints = append(r.complaints, complaint)
	return nil
}

func (r *fakeComplaintRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Complaint, error) {
	for _, c := range r.complaints {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeComplaintRepo) ListAll(_ context.Context) ([]*entities.Complaint, error) {
	return r.complaints, nil
}

func (r *fakeComplaintRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Complaint, error) {
	var out []*entities.Complaint
	for _, c := range r.complaints {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeComplaintRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ComplaintStatus) (int64, error) {
	for _, c := range r.complaints {
		if c.ID == id && c.Status != entities.ComplaintStatusResolved {
			c.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func newComplaintHandler(repo *fakeComplaintRepo) *Complaint {
	return NewComplaintHandler(complaintUsecase.NewComplaintService(repo), zap.NewNop())
}

func seededComplaint(userID uuid.UUID, title string) *entities.Complaint {
	return &entities.Complaint{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: "details",
		Status:      entities.ComplaintStatusPending,
	}
}

func TestListComplaintsByUser_StudentViewsOwn(t *testing.T) {
	student := testStudent()
	repo := &fakeComplaintRepo{complaints: []*entities.Complaint{
		seededComplaint(student.ID, "leaking tap"),
		seededComplaint(uuid.New(), "someone else's"),
	}}
	h := newComplaintHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(student.ID.String())
	asUser(c, student)

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []*entities.Complaint
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp) != 1 || resp[0].Title != "leaking tap" {
		t.Fatalf("expected only the caller's complaint, got %+v", resp)
	}
}

func TestListComplaintsByUser_StudentCannotViewOthers(t *testing.T) {
	h := newComplaintHandler(&fakeComplaintRepo{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(uuid.New().String())
	asUser(c, testStudent())

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestListComplaintsByUser_AdminViewsAnyUser(t *testing.T) {
	student := testStudent()
	repo := &fakeComplaintRepo{complaints: []*entities.Complaint{
		seededComplaint(student.ID, "broken fan"),
	}}
	h := newComplaintHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(student.ID.String())
	asUser(c, testAdmin())

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []*entities.Complaint
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 complaint, got %d", len(resp))
	}
}
