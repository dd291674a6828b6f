package errors

import "errors"

// Common errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden access")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNotActive      = errors.New("user is not active")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
)

// Room request errors
var (
	ErrRequestNotFound         = errors.New("room request not found")
	ErrRequestAlreadyDecided   = errors.New("room request already decided")
	ErrActiveRequestExists     = errors.New("an active room request already exists")
	ErrMissingRequiredField    = errors.New("missing required field")
	ErrTooManyMembers          = errors.New("a room request may name at most three members")
	ErrInvalidMemberEmail      = errors.New("member entry is not a valid email")
	ErrInvalidDecisionStatus   = errors.New("decision status must be accepted or rejected")
	ErrIncompleteAdminResponse = errors.New("accepting a request requires block, floor, room number and comments")
)

// Complaint errors
var (
	ErrComplaintNotFound        = errors.New("complaint not found")
	ErrComplaintAlreadyResolved = errors.New("complaint already resolved")
	ErrInvalidComplaintStatus   = errors.New("invalid complaint status")
)

// Receipt errors
var (
	ErrReceiptNotFound        = errors.New("receipt not found")
	ErrReceiptAlreadyReviewed = errors.New("receipt already reviewed")
	ErrInvalidReceiptStatus   = errors.New("invalid receipt status")
)

// Late pass errors
var (
	ErrLatePassNotFound       = errors.New("late pass not found")
	ErrLatePassAlreadyDecided = errors.New("late pass already decided")
	ErrInvalidLatePassStatus  = errors.New("invalid late pass status")
)
