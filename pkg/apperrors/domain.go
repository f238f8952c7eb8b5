package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors shared across
// services. One-off errors are built inline with New/Wrap.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict converts a storage unique-constraint violation into a 409.
// The unique index is the source of truth for duplicates; the application
// layer never pre-checks and races.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- Projects ---

var ErrNotProjectOwner = New(
	CodeForbidden,
	"project",
	"Only the project owner may perform this action",
	http.StatusForbidden,
)

// --- Applications ---

var ErrOwnProjectApplication = New(
	CodeInvalidOperation,
	"application",
	"You cannot apply to your own project",
	http.StatusBadRequest,
)

// ErrApplicationDecided rejects a second decision on an application that has
// already left the pending state.
var ErrApplicationDecided = New(
	CodeConflict,
	"application",
	"Application has already been decided",
	http.StatusConflict,
)

var ErrApplicationAccessDenied = New(
	CodeForbidden,
	"application",
	"Only the applicant or the project owner may view this application",
	http.StatusForbidden,
)

// --- Messages ---

var ErrMessageAccessDenied = New(
	CodeForbidden,
	"message",
	"Only the project owner or approved applicants may access project messages",
	http.StatusForbidden,
)

var ErrEmptyMessage = New(
	CodeValidationFailed,
	"message",
	"Message content is required",
	http.StatusBadRequest,
)
