package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code so cloned sentinels still compare equal.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Generic errors.
var (
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "invalid email or password")
	ErrInactiveAccount    = New("ACCOUNT_INACTIVE", http.StatusForbidden, "account is inactive")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrForbidden          = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrConflict           = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// Application workflow errors. All of them are user facing and recoverable.
var (
	ErrUnauthenticated      = New("UNAUTHENTICATED", http.StatusUnauthorized, "User not authenticated")
	ErrProfileNotFound      = New("PROFILE_NOT_FOUND", http.StatusNotFound, "Profile not found")
	ErrProfileIncomplete    = New("PROFILE_INCOMPLETE", http.StatusUnprocessableEntity, "Please complete your profile before applying")
	ErrProfileRecordMissing = New("PROFILE_RECORD_MISSING", http.StatusNotFound, "No profile record exists for this account")
	ErrEssaysIncomplete     = New("ESSAYS_INCOMPLETE", http.StatusUnprocessableEntity, "Please complete all essays before applying")
	ErrAlreadyApplied       = New("ALREADY_APPLIED", http.StatusConflict, "You have already submitted an application")
	ErrStore                = New("STORE_ERROR", http.StatusInternalServerError, "record store failure")
)

// StoreError passes a record store failure through with its native message.
func StoreError(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: ErrStore.Code, Status: ErrStore.Status, Message: err.Error(), Err: err}
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
