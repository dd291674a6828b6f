package common

// MessageResponse is a simple confirmation payload
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON shape of error replies
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}
