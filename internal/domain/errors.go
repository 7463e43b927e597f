package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")
	ErrNoRowsAffected = errors.New("no rows affected")
)

// APIError is the error shape every failed request resolves to. The struct
// doubles as the wire envelope, so handlers serialize it as-is.
type APIError struct {
	StatusCode  int      `json:"statusCode"`
	Description []string `json:"description"`
}

func (e *APIError) Error() string {
	return strings.Join(e.Description, "; ")
}

// NewEntityNotFoundError reports a missing entity. Status is 400, not 404,
// which is a stable contract with existing clients.
func NewEntityNotFoundError(entity, id string) *APIError {
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Description: []string{fmt.Sprintf("%s with id %s not found", entity, id)},
	}
}

func NewEntityExistsError(entity, field, value string) *APIError {
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Description: []string{fmt.Sprintf("%s with %s = %s already exists", entity, field, value)},
	}
}

func NewValidationError(messages []string) *APIError {
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Description: messages,
	}
}

// WrapError converts an unclassified error into a 500 envelope. Already
// typed errors pass through unchanged.
func WrapError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{
		StatusCode:  http.StatusInternalServerError,
		Description: []string{err.Error()},
	}
}
