package roomrequest

// CreateRoomRequestRequest represents the request to submit a room request
type CreateRoomRequestRequest struct {
	Faculty string   `json:"faculty" validate:"required,min=1,max=100"`
	Batch   string   `json:"batch" validate:"required,min=1,max=50"`
	Members []string `json:"members" validate:"max=3,dive,member_email"`
	Reason  string   `json:"reason" validate:"required,min=1"`
}

// AdminResponseRequest carries the allocation decision fields
type AdminResponseRequest struct {
	Block      string `json:"block"`
	Floor      string `json:"floor"`
	RoomNumber string `json:"roomNumber"`
	Comments   string `json:"comments"`
}

// DecideRoomRequestRequest represents the admin approval/rejection request
type DecideRoomRequestRequest struct {
	ID            string                `json:"id" validate:"required,uuid"`
	Status        string                `json:"status" validate:"required,oneof=accepted rejected"`
	AdminResponse *AdminResponseRequest `json:"adminResponse,omitempty"`
}
