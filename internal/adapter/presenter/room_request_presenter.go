package presenter

import (
	rrdto "github.com/hosteldesk/hosteldesk/internal/adapter/dto/roomrequest"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
)

// ToRoomRequestResponse converts a room request entity to its response shape.
// A stored admin response that fails to unmarshal is omitted rather than
// failing the whole reply.
func ToRoomRequestResponse(req *entities.RoomRequest) *rrdto.RoomRequestResponse {
	if req == nil {
		return nil
	}

	resp := &rrdto.RoomRequestResponse{
		ID:        req.ID.String(),
		UserID:    req.UserID.String(),
		Requester: ToUserResponse(req.Requester),
		Faculty:   req.Faculty,
		Batch:     req.Batch,
		Members:   append([]string{}, req.Members...),
		Reason:    req.Reason,
		Status:    string(req.Status),
		DecidedAt: req.DecidedAt,
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}

	if req.DecidedBy != nil {
		id := req.DecidedBy.String()
		resp.DecidedBy = &id
	}

	if decision, err := req.Decision(); err == nil && decision != nil {
		resp.AdminResponse = &rrdto.AdminResponseView{
			Block:      decision.Block,
			Floor:      decision.Floor,
			RoomNumber: decision.RoomNumber,
			Comments:   decision.Comments,
		}
	}

	return resp
}

// ToRoomRequestListResponse converts a slice of room requests
func ToRoomRequestListResponse(reqs []*entities.RoomRequest) *rrdto.RoomRequestListResponse {
	out := make([]*rrdto.RoomRequestResponse, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, ToRoomRequestResponse(req))
	}
	return &rrdto.RoomRequestListResponse{
		Requests: out,
		Total:    len(out),
	}
}
