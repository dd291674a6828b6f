package auth

import "time"

// UserResponse represents a user in responses
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Faculty   string    `json:"faculty,omitempty"`
	Batch     string    `json:"batch,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse represents the response after a successful login
type LoginResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	ExpiresIn    int64         `json:"expires_in"`
}
