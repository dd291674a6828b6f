package roomrequest

import (
	"time"

	"github.com/hosteldesk/hosteldesk/internal/adapter/dto/auth"
)

// AdminResponseView is the allocation decision in responses
type AdminResponseView struct {
	Block      string `json:"block"`
	Floor      string `json:"floor"`
	RoomNumber string `json:"roomNumber"`
	Comments   string `json:"comments"`
}

// RoomRequestResponse represents a room request in responses
type RoomRequestResponse struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	Requester     *auth.UserResponse `json:"requester,omitempty"`
	Faculty       string             `json:"faculty"`
	Batch         string             `json:"batch"`
	Members       []string           `json:"members"`
	Reason        string             `json:"reason"`
	Status        string             `json:"status"`
	AdminResponse *AdminResponseView `json:"admin_response,omitempty"`
	DecidedBy     *string            `json:"decided_by,omitempty"`
	DecidedAt     *time.Time         `json:"decided_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// RoomRequestListResponse represents a list of room requests
type RoomRequestListResponse struct {
	Requests []*RoomRequestResponse `json:"requests"`
	Total    int                    `json:"total"`
}
