package roomrequest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
)

// fakeRequestRepo is an in-memory RoomRequestRepository. ApplyDecision
// mimics the conditional UPDATE the real repository issues.
type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*entities.RoomRequest
	order    []uuid.UUID
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uuid.UUID]*entities.RoomRequest)}
}

func (r *fakeRequestRepo) Create(_ context.Context, request *entities.RoomRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[request.ID] = request
	r.order = append(r.order, request.ID)
	return nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.RoomRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *request
	return &cp, nil
}

func (r *fakeRequestRepo) List(_ context.Context, filters repositories.RoomRequestFilters) ([]*entities.RoomRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.RoomRequest
	for _, id := range r.order {
		request := r.requests[id]
		if filters.Status != nil && request.Status != *filters.Status {
			continue
		}
		if filters.UserID != nil && request.UserID != *filters.UserID {
			continue
		}
		cp := *request
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRequestRepo) CountActiveByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, request := range r.requests {
		if request.UserID == userID && request.Status != entities.RequestStatusRejected {
			n++
		}
	}
	return n, nil
}

func (r *fakeRequestRepo) ApplyDecision(_ context.Context, id uuid.UUID, decision repositories.RoomRequestDecision) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok || request.Status != entities.RequestStatusPending {
		return 0, nil
	}
	request.Status = decision.Status
	request.AdminResponse = decision.AdminResponse
	decidedBy := decision.DecidedBy
	decidedAt := decision.DecidedAt
	request.DecidedBy = &decidedBy
	request.DecidedAt = &decidedAt
	return 1, nil
}

func seedPending(t *testing.T, repo *fakeRequestRepo, userID uuid.UUID) *entities.RoomRequest {
	t.Helper()
	request := entities.NewRoomRequest(userID, "Engineering", "2024", []string{"mate@example.com"}, "closer to campus")
	if err := repo.Create(context.Background(), request); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return request
}

func TestCreate_NormalizesMembers(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)

	request, err := svc.Create(context.Background(), CreateInput{
		UserID:  uuid.New(),
		Faculty: "Engineering",
		Batch:   "2024",
		Members: []string{"", "  one@example.com ", "", "two@example.com"},
		Reason:  "closer to campus",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(request.Members) != 2 {
		t.Fatalf("expected 2 members after dropping blanks, got %d", len(request.Members))
	}
	if request.Members[0] != "one@example.com" || request.Members[1] != "two@example.com" {
		t.Fatalf("members not normalized: %v", request.Members)
	}
	if request.Status != entities.RequestStatusPending {
		t.Fatalf("expected pending, got %s", request.Status)
	}
}

func TestCreate_RejectsInvalidMemberEmail(t *testing.T) {
	svc := NewRoomRequestService(newFakeRequestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		UserID:  uuid.New(),
		Faculty: "Engineering",
		Batch:   "2024",
		Members: []string{"not-an-email"},
		Reason:  "closer to campus",
	})
	if !errors.Is(err, usecaseErrors.ErrInvalidMemberEmail) {
		t.Fatalf("expected ErrInvalidMemberEmail, got %v", err)
	}
}

func TestCreate_RejectsTooManyMembers(t *testing.T) {
	svc := NewRoomRequestService(newFakeRequestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		UserID:  uuid.New(),
		Faculty: "Engineering",
		Batch:   "2024",
		Members: []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"},
		Reason:  "closer to campus",
	})
	if !errors.Is(err, usecaseErrors.ErrTooManyMembers) {
		t.Fatalf("expected ErrTooManyMembers, got %v", err)
	}
}

func TestCreate_RejectsMissingFields(t *testing.T) {
	svc := NewRoomRequestService(newFakeRequestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		UserID:  uuid.New(),
		Faculty: "   ",
		Batch:   "2024",
		Reason:  "closer to campus",
	})
	if !errors.Is(err, usecaseErrors.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestCreate_RejectsSecondActiveRequest(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)
	userID := uuid.New()
	seedPending(t, repo, userID)

	_, err := svc.Create(context.Background(), CreateInput{
		UserID:  userID,
		Faculty: "Engineering",
		Batch:   "2024",
		Reason:  "second attempt",
	})
	if !errors.Is(err, usecaseErrors.ErrActiveRequestExists) {
		t.Fatalf("expected ErrActiveRequestExists, got %v", err)
	}
}

func TestCreate_AllowsNewRequestAfterRejection(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)
	userID := uuid.New()
	old := seedPending(t, repo, userID)

	if _, err := svc.Decide(context.Background(), DecideInput{
		RequestID: old.ID,
		Status:    entities.RequestStatusRejected,
		DecidedBy: uuid.New(),
	}); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	if _, err := svc.Create(context.Background(), CreateInput{
		UserID:  userID,
		Faculty: "Engineering",
		Batch:   "2024",
		Reason:  "try again",
	}); err != nil {
		t.Fatalf("create after rejection should succeed: %v", err)
	}
}

func TestDecide_AcceptStoresResponse(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)
	request := seedPending(t, repo, uuid.New())
	adminID := uuid.New()

	decided, err := svc.Decide(context.Background(), DecideInput{
		RequestID:     request.ID,
		Status:        entities.RequestStatusAccepted,
		AdminResponse: &entities.AdminResponse{Block: "A", Floor: "2", RoomNumber: "204", Comments: "allocated"},
		DecidedBy:     adminID,
	})
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	if decided.Status != entities.RequestStatusAccepted {
		t.Fatalf("expected accepted, got %s", decided.Status)
	}
	if decided.DecidedBy == nil || *decided.DecidedBy != adminID {
		t.Fatal("decided_by must record the admin")
	}
	decision, err := decided.Decision()
	if err != nil || decision == nil {
		t.Fatalf("expected stored decision, got %v (%v)", decision, err)
	}
	if decision.RoomNumber != "204" {
		t.Fatalf("unexpected room number %s", decision.RoomNumber)
	}
}

func TestDecide_AcceptRequiresCompleteResponse(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)
	request := seedPending(t, repo, uuid.New())

	_, err := svc.Decide(context.Background(), DecideInput{
		RequestID:     request.ID,
		Status:        entities.RequestStatusAccepted,
		AdminResponse: &entities.AdminResponse{Block: "A"},
		DecidedBy:     uuid.New(),
	})
	if !errors.Is(err, usecaseErrors.ErrIncompleteAdminResponse) {
		t.Fatalf("expected ErrIncompleteAdminResponse, got %v", err)
	}

	reloaded, _ := repo.FindByID(context.Background(), request.ID)
	if reloaded.Status != entities.RequestStatusPending {
		t.Fatalf("failed acceptance must leave the request pending, got %s", reloaded.Status)
	}
}

func TestDecide_RejectWithoutResponse(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)
	request := seedPending(t, repo, uuid.New())

	decided, err := svc.Decide(context.Background(), DecideInput{
		RequestID: request.ID,
		Status:    entities.RequestStatusRejected,
		DecidedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if decided.Status != entities.RequestStatusRejected {
		t.Fatalf("expected rejected, got %s", decided.Status)
	}
	decision, err := decided.Decision()
	if err != nil {
		t.Fatalf("Decision() failed: %v", err)
	}
	if decision != nil {
		t.Fatal("rejection without response must keep the decision absent")
	}
}

func TestDecide_NotFound(t *testing.T) {
	svc := NewRoomRequestService(newFakeRequestRepo())

	_, err := svc.Decide(context.Background(), DecideInput{
		RequestID: uuid.New(),
		Status:    entities.RequestStatusRejected,
		DecidedBy: uuid.New(),
	})
	if !errors.Is(err, usecaseErrors.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestDecide_AlreadyDecided(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)
	request := seedPending(t, repo, uuid.New())

	if _, err := svc.Decide(context.Background(), DecideInput{
		RequestID: request.ID,
		Status:    entities.RequestStatusRejected,
		DecidedBy: uuid.New(),
	}); err != nil {
		t.Fatalf("first decision failed: %v", err)
	}

	_, err := svc.Decide(context.Background(), DecideInput{
		RequestID:     request.ID,
		Status:        entities.RequestStatusAccepted,
		AdminResponse: &entities.AdminResponse{Block: "A", Floor: "2", RoomNumber: "204", Comments: "late"},
		DecidedBy:     uuid.New(),
	})
	if !errors.Is(err, usecaseErrors.ErrRequestAlreadyDecided) {
		t.Fatalf("expected ErrRequestAlreadyDecided, got %v", err)
	}
}

// droppedWriteRepo reports no rows affected even though the request is
// still pending, the way a lost write would look to the service.
type droppedWriteRepo struct {
	*fakeRequestRepo
}

func (r *droppedWriteRepo) ApplyDecision(_ context.Context, _ uuid.UUID, _ repositories.RoomRequestDecision) (int64, error) {
	return 0, nil
}

func TestDecide_DroppedWriteOnPendingIsNotConflict(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(&droppedWriteRepo{fakeRequestRepo: repo})
	request := seedPending(t, repo, uuid.New())

	_, err := svc.Decide(context.Background(), DecideInput{
		RequestID: request.ID,
		Status:    entities.RequestStatusRejected,
		DecidedBy: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected an error when the decision write is dropped")
	}
	if errors.Is(err, usecaseErrors.ErrRequestAlreadyDecided) {
		t.Fatal("a still-pending request must not be reported as already decided")
	}
	if errors.Is(err, usecaseErrors.ErrRequestNotFound) {
		t.Fatal("a still-pending request must not be reported as missing")
	}
}

func TestDecide_RejectsInvalidStatus(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)
	request := seedPending(t, repo, uuid.New())

	_, err := svc.Decide(context.Background(), DecideInput{
		RequestID: request.ID,
		Status:    entities.RequestStatusPending,
		DecidedBy: uuid.New(),
	})
	if !errors.Is(err, usecaseErrors.ErrInvalidDecisionStatus) {
		t.Fatalf("expected ErrInvalidDecisionStatus, got %v", err)
	}
}

func TestDecide_ConcurrentDecisionsExactlyOneWins(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)
	request := seedPending(t, repo, uuid.New())

	const attempts = 8
	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Decide(context.Background(), DecideInput{
				RequestID: request.ID,
				Status:    entities.RequestStatusRejected,
				DecidedBy: uuid.New(),
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, usecaseErrors.ErrRequestAlreadyDecided):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning decision, got %d", wins)
	}
}

func TestLists_FilterByStatusAndUser(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRoomRequestService(repo)

	alice := uuid.New()
	bob := uuid.New()
	first := seedPending(t, repo, alice)
	seedPending(t, repo, bob)

	if _, err := svc.Decide(context.Background(), DecideInput{
		RequestID:     first.ID,
		Status:        entities.RequestStatusAccepted,
		AdminResponse: &entities.AdminResponse{Block: "A", Floor: "1", RoomNumber: "101", Comments: "ok"},
		DecidedBy:     uuid.New(),
	}); err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	pending, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].UserID != bob {
		t.Fatalf("pending list wrong: %+v", pending)
	}

	accepted, err := svc.ListAccepted(context.Background())
	if err != nil {
		t.Fatalf("ListAccepted failed: %v", err)
	}
	if len(accepted) != 1 || accepted[0].ID != first.ID {
		t.Fatalf("accepted list wrong: %+v", accepted)
	}

	mine, err := svc.ListByRequester(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListByRequester failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != first.ID {
		t.Fatalf("requester list wrong: %+v", mine)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(all))
	}
	if all[0].ID != first.ID {
		t.Fatal("ListAll must preserve submission order")
	}
}
