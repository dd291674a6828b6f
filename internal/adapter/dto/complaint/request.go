package complaint

// CreateComplaintRequest represents the request to file a complaint
type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required,min=1"`
}

// UpdateComplaintStatusRequest moves a complaint through its lifecycle
type UpdateComplaintStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress resolved"`
}
