package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidRole  = errors.New("invalid role")

	// Room request errors
	ErrInvalidRequestStatus    = errors.New("invalid request status")
	ErrIncompleteAdminResponse = errors.New("admin response is incomplete")
)
