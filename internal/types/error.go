package types

import "fmt"

// Error kinds. Handlers map these to HTTP statuses; clients use them to
// decide between session termination, inline messages, and silent degrade.
const (
	KindUnauthorized = "unauthorized"
	KindConflict     = "conflict"
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindTransport    = "transport"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s [kind: %s]", e.Code, e.Message, e.Kind)
}

// NewUnauthorized reports a missing or rejected credential (401).
func NewUnauthorized(message string) *AppError {
	return &AppError{Code: 401, Message: message, Kind: KindUnauthorized}
}

// NewConflict reports a duplicate-resource condition (409).
func NewConflict(message string) *AppError {
	return &AppError{Code: 409, Message: message, Kind: KindConflict}
}

// NewValidation reports input rejected before any persistence effect (400).
func NewValidation(message string) *AppError {
	return &AppError{Code: 400, Message: message, Kind: KindValidation}
}

// NewNotFound reports a missing resource (404).
func NewNotFound(message string) *AppError {
	return &AppError{Code: 404, Message: message, Kind: KindNotFound}
}
