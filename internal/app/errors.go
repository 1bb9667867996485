package app

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
)

// DomainError carries the HTTP status, stable code, and message a failed
// operation maps to. Code may be empty for responses that historically
// shipped without one.
type DomainError struct {
	Status  int
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func badRequest(code, message string) *DomainError {
	return &DomainError{Status: http.StatusBadRequest, Code: code, Message: message}
}

func mapError(err error) (status int, code, message string) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Status, domainErr.Code, domainErr.Message
	}
	if errors.Is(err, sql.ErrNoRows) {
		return http.StatusNotFound, "NOT_FOUND", "Not found"
	}
	return http.StatusInternalServerError, "", "Internal server error: " + err.Error()
}
