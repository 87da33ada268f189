// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Quill.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Taxonomy: BadRequest, Conflict and NotFound are the recoverable failures returned
    by the use-case layer. Anything else becomes Internal at the boundary.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Use-cases never swallow an [AppError]; they return it unchanged so the boundary layer
can render it.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Codes

const (
	CodeBadRequest = "BAD_REQUEST"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL_ERROR"
	CodeRateLimit  = "RATE_LIMITED"
)

// # Canonical Messages

const (
	// MsgInvalidInput is returned when required input fields are missing or malformed.
	MsgInvalidInput = "input data is not provided or invalid"
	// MsgIDNotProvided is returned when an operation needs an id and got none.
	MsgIDNotProvided = "id is not provided"
	// MsgEmailInUse is returned when an email belongs to another author.
	MsgEmailInUse = "email already in use"
	// MsgSlugInUse is returned when a post slug is already taken.
	MsgSlugInUse = "slug already in use"
	// MsgAuthorHasPosts is returned when deleting an author that posts still reference.
	MsgAuthorHasPosts = "author still has posts"
)

// AppError is the canonical error type for the Quill API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for BAD_REQUEST responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause returns a copy of e that records cause for server-side logging.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// # Client Errors (4xx)

// BadRequest creates a 400 [AppError] for missing or malformed caller input.
func BadRequest(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeBadRequest,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Author") // Returns "Author not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// NotFoundByID creates a 404 [AppError] naming the resource and the id that was looked up.
//
// Example:
//
//	apperr.NotFoundByID("Author", "42") // Returns "Author not found using id: 42"
func NotFoundByID(resource, id string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found using id: %s", resource, id),
		HTTPStatus: http.StatusNotFound,
	}
}

// Conflict creates a 409 [AppError] for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       CodeRateLimit,
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsNotFound reports whether err carries a NOT_FOUND [AppError].
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsConflict reports whether err carries a CONFLICT [AppError].
func IsConflict(err error) bool { return hasCode(err, CodeConflict) }

// IsBadRequest reports whether err carries a BAD_REQUEST [AppError].
func IsBadRequest(err error) bool { return hasCode(err, CodeBadRequest) }

func hasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
