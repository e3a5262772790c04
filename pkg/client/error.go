package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error kinds mirrored from the server envelope. Transport covers network
// failures and responses that could not be decoded.
const (
	KindUnauthorized = "unauthorized"
	KindConflict     = "conflict"
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindTransport    = "transport"
)

// Error is a typed API error
type Error struct {
	StatusCode int
	Message    string
	Kind       string
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error (status %d, kind %s): %s", e.StatusCode, e.Kind, e.Message)
	}
	return fmt.Sprintf("API error (kind %s): %s", e.Kind, e.Message)
}

// IsUnauthorized reports whether err is a 401-kind API error
func IsUnauthorized(err error) bool {
	return isKind(err, KindUnauthorized)
}

// IsConflict reports whether err is a duplicate-resource API error
func IsConflict(err error) bool {
	return isKind(err, KindConflict)
}

// IsValidation reports whether err is a rejected-input API error
func IsValidation(err error) bool {
	return isKind(err, KindValidation)
}

// IsNotFound reports whether err is a missing-resource API error
func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

// IsTransport reports whether err is a network or decode failure, as opposed
// to a well-formed server response.
func IsTransport(err error) bool {
	return isKind(err, KindTransport)
}

func isKind(err error, kind string) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// errorEnvelope is the server's JSON error body
type errorEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// decodeError builds an *Error from a non-2xx response
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var envelope errorEnvelope
		if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
			apiErr.Kind = envelope.Type
		}
	}

	if apiErr.Kind == "" {
		apiErr.Kind = kindForStatus(resp.StatusCode)
	}

	return apiErr
}

func kindForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindTransport
	}
}
