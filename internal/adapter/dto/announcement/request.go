package announcement

// CreateAnnouncementRequest represents the request to publish an announcement
type CreateAnnouncementRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required,min=1"`
}
