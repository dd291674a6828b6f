package presenter

import (
	authdto "github.com/hosteldesk/hosteldesk/internal/adapter/dto/auth"
	"github.com/hosteldesk/hosteldesk/internal/domain/entities"
)

// ToUserResponse converts a user entity to its response shape
func ToUserResponse(user *entities.User) *authdto.UserResponse {
	if user == nil {
		return nil
	}
	return &authdto.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		Faculty:   user.Faculty,
		Batch:     user.Batch,
		CreatedAt: user.CreatedAt,
	}
}
