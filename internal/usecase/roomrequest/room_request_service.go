package roomrequest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
	"github.com/hosteldesk/hosteldesk/internal/domain/repositories"
	usecaseErrors "github.com/hosteldesk/hosteldesk/internal/usecase/errors"
)

// RoomRequestService handles room request business logic
type RoomRequestService struct {
	requestRepo repositories.RoomRequestRepository
	validate    *validator.Validate
}

// NewRoomRequestService creates a new room request service
func NewRoomRequestService(requestRepo repositories.RoomRequestRepository) *RoomRequestService {
	return &RoomRequestService{
		requestRepo: requestRepo,
		validate:    validator.New(),
	}
}

// CreateInput represents input for submitting a room request
type CreateInput struct {
	UserID  uuid.UUID
	Faculty string
	Batch   string
	Members []string
	Reason  string
}

// Create submits a new room request. A requester may hold at most one
// pending or accepted request at a time.
func (s *RoomRequestService) Create(ctx context.Context, input CreateInput) (*entities.RoomRequest, error) {
	if input.UserID == uuid.Nil {
		return nil, usecaseErrors.ErrUnauthorized
	}

	faculty := strings.TrimSpace(input.Faculty)
	batch := strings.TrimSpace(input.Batch)
	reason := strings.TrimSpace(input.Reason)
	if faculty == "" || batch == "" || reason == "" {
		return nil, usecaseErrors.ErrMissingRequiredField
	}

	members, err := s.normalizeMembers(input.Members)
	if err != nil {
		return nil, err
	}

	active, err := s.requestRepo.CountActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active requests: %w", err)
	}
	if active > 0 {
		return nil, usecaseErrors.ErrActiveRequestExists
	}

	request := entities.NewRoomRequest(input.UserID, faculty, batch, members, reason)

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create room request: %w", err)
	}

	return request, nil
}

// normalizeMembers drops blank placeholder slots from the mobile form and
// validates the remaining entries as email addresses.
func (s *RoomRequestService) normalizeMembers(raw []string) ([]string, error) {
	members := make([]string, 0, len(raw))
	for _, m := range raw {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if err := s.validate.Var(m, "email"); err != nil {
			return nil, usecaseErrors.ErrInvalidMemberEmail
		}
		members = append(members, m)
	}
	if len(members) > entities.MaxRequestMembers {
		return nil, usecaseErrors.ErrTooManyMembers
	}
	return members, nil
}

// DecideInput represents input for deciding a room request
type DecideInput struct {
	RequestID     uuid.UUID
	Status        entities.RequestStatus
	AdminResponse *entities.AdminResponse
	DecidedBy     uuid.UUID
}

// Decide transitions a pending request to accepted or rejected. The
// transition is guarded by the stored status, so of two concurrent
// decisions on the same request exactly one wins; the other observes
// ErrRequestAlreadyDecided.
func (s *RoomRequestService) Decide(ctx context.Context, input DecideInput) (*entities.RoomRequest, error) {
	if !input.Status.IsTerminal() {
		return nil, usecaseErrors.ErrInvalidDecisionStatus
	}

	// Acceptance must carry a full allocation; rejection may omit it.
	if input.Status == entities.RequestStatusAccepted && !input.AdminResponse.IsComplete() {
		return nil, usecaseErrors.ErrIncompleteAdminResponse
	}

	var responseJSON []byte
	if input.AdminResponse != nil {
		raw, err := json.Marshal(input.AdminResponse)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal admin response: %w", err)
		}
		responseJSON = raw
	}

	decision := repositories.RoomRequestDecision{
		Status:        input.Status,
		AdminResponse: responseJSON,
		DecidedBy:     input.DecidedBy,
		DecidedAt:     time.Now(),
	}

	affected, err := s.requestRepo.ApplyDecision(ctx, input.RequestID, decision)
	if err != nil {
		return nil, fmt.Errorf("failed to apply decision: %w", err)
	}

	if affected == 0 {
		// Either the request does not exist or it left pending first.
		existing, err := s.requestRepo.FindByID(ctx, input.RequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, usecaseErrors.ErrRequestNotFound
			}
			return nil, fmt.Errorf("failed to get room request: %w", err)
		}
		if existing.IsPending() {
			return nil, fmt.Errorf("decision was not applied to pending request %s", input.RequestID)
		}
		return nil, usecaseErrors.ErrRequestAlreadyDecided
	}

	request, err := s.requestRepo.FindByID(ctx, input.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload room request: %w", err)
	}
	return request, nil
}

// ListPending retrieves all pending requests in submission order
func (s *RoomRequestService) ListPending(ctx context.Context) ([]*entities.RoomRequest, error) {
	status := entities.RequestStatusPending
	return s.list(ctx, repositories.RoomRequestFilters{Status: &status})
}

// ListAccepted retrieves all accepted requests
func (s *RoomRequestService) ListAccepted(ctx context.Context) ([]*entities.RoomRequest, error) {
	status := entities.RequestStatusAccepted
	return s.list(ctx, repositories.RoomRequestFilters{Status: &status})
}

// ListByRequester retrieves all of a user's requests, any status
func (s *RoomRequestService) ListByRequester(ctx context.Context, userID uuid.UUID) ([]*entities.RoomRequest, error) {
	return s.list(ctx, repositories.RoomRequestFilters{UserID: &userID})
}

// ListAll retrieves every request for the administrative view
func (s *RoomRequestService) ListAll(ctx context.Context) ([]*entities.RoomRequest, error) {
	return s.list(ctx, repositories.RoomRequestFilters{})
}

func (s *RoomRequestService) list(ctx context.Context, filters repositories.RoomRequestFilters) ([]*entities.RoomRequest, error) {
	requests, err := s.requestRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list room requests: %w", err)
	}
	return requests, nil
}
