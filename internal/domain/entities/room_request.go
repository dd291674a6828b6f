package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RequestStatus represents the lifecycle state of a room request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// IsValid checks if the request status is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from this status.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// MaxRequestMembers caps the additional occupants named on a request.
const MaxRequestMembers = 3

// AdminResponse is the allocation decision attached when an admin processes
// a request. All four fields are required on acceptance; a rejection may
// carry a partial response or none at all.
type AdminResponse struct {
	Block      string `json:"block"`
	Floor      string `json:"floor"`
	RoomNumber string `json:"roomNumber"`
	Comments   string `json:"comments"`
}

// IsComplete reports whether every allocation field is filled in.
func (a *AdminResponse) IsComplete() bool {
	if a == nil {
		return false
	}
	return a.Block != "" && a.Floor != "" && a.RoomNumber != "" && a.Comments != ""
}

// RoomRequest represents a student's accommodation request.
type RoomRequest struct {
	ID        uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID                   `json:"user_id" gorm:"type:uuid;not null;index"`
	Requester *User                       `json:"requester,omitempty" gorm:"foreignKey:UserID"`
	Faculty   string                      `json:"faculty" gorm:"type:varchar(100);not null"`
	Batch     string                      `json:"batch" gorm:"type:varchar(50);not null"`
	Members   datatypes.JSONSlice[string] `json:"members" gorm:"type:jsonb;default:'[]'"`
	Reason    string                      `json:"reason" gorm:"type:text;not null"`
	Status    RequestStatus               `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	// Allocation decision, absent while pending
	AdminResponse datatypes.JSON `json:"admin_response,omitempty" gorm:"type:jsonb"`
	DecidedBy     *uuid.UUID     `json:"decided_by,omitempty" gorm:"type:uuid"`
	DecidedAt     *time.Time     `json:"decided_at,omitempty" gorm:"type:timestamp"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for RoomRequest
func (RoomRequest) TableName() string {
	return "room_requests"
}

// NewRoomRequest creates a pending request with no decision attached.
func NewRoomRequest(userID uuid.UUID, faculty, batch string, members []string, reason string) *RoomRequest {
	if members == nil {
		members = []string{}
	}
	return &RoomRequest{
		ID:        uuid.New(),
		UserID:    userID,
		Faculty:   faculty,
		Batch:     batch,
		Members:   datatypes.NewJSONSlice(members),
		Reason:    reason,
		Status:    RequestStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// IsPending checks if the request is still awaiting a decision
func (r *RoomRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// Decision unmarshals the stored admin response, nil when absent.
func (r *RoomRequest) Decision() (*AdminResponse, error) {
	if len(r.AdminResponse) == 0 {
		return nil, nil
	}
	var resp AdminResponse
	if err := json.Unmarshal(r.AdminResponse, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetDecision records the terminal status and the admin response payload.
// Invariant: accepted requests always carry a complete response.
func (r *RoomRequest) SetDecision(status RequestStatus, resp *AdminResponse, decidedBy uuid.UUID) error {
	if !status.IsTerminal() {
		return ErrInvalidRequestStatus
	}
	if status == RequestStatusAccepted && !resp.IsComplete() {
		return ErrIncompleteAdminResponse
	}

	now := time.Now()
	r.Status = status
	r.DecidedBy = &decidedBy
	r.DecidedAt = &now
	r.UpdatedAt = now

	if resp != nil {
		raw, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		r.AdminResponse = raw
	}
	return nil
}
