package latepass

// CreateLatePassRequest represents the request to apply for a late pass
type CreateLatePassRequest struct {
	Reason        string `json:"reason" validate:"required,min=1"`
	DepartureDate string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	DepartureTime string `json:"departure_time" validate:"required,datetime=15:04"`
}

// UpdateLatePassStatusRequest approves or rejects a late pass application
type UpdateLatePassStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
