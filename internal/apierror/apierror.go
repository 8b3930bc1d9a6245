// Package apierror provides standardized error response structures for the API
// plus the typed error taxonomy used across services, repositories, and the
// session mirror. All errors returned to clients go through this package to
// ensure consistency and to prevent leaking internal details (stack traces,
// DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FieldErrors wraps multiple field-level validation errors.
type FieldErrors struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewFields(fields map[string]string) *FieldErrors {
	return &FieldErrors{Detail: "Error de validacion", Fields: fields}
}

// ── Typed error taxonomy ─────────────────────────────────────────────────────
//
// Modeled on the four failure classes the backend distinguishes:
//
//   Validation — structurally invalid input caught before any I/O
//               (kilometraje en retroceso, montos negativos, fechas malformadas)
//   NotFound   — requested record absent
//   Conflict   — unique-constraint violation (placa duplicada, número de póliza)
//   Transient  — timeout / network failure; retryable by the caller, never
//                retried automatically here
//
// Handlers map these to HTTP status codes via StatusCode.

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindTransient
)

// Error is a typed domain error. Detail is safe to show to clients.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(detail string) *Error { return &Error{Kind: KindValidation, Detail: detail} }
func NotFound(detail string) *Error   { return &Error{Kind: KindNotFound, Detail: detail} }
func Conflict(detail string) *Error   { return &Error{Kind: KindConflict, Detail: detail} }

// Transient wraps a timeout or network failure. The underlying error is kept
// for logging but never exposed to clients.
func Transient(detail string, err error) *Error {
	return &Error{Kind: KindTransient, Detail: detail, Err: err}
}

// KindOf extracts the taxonomy kind from any error chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsTransient(err error) bool  { return KindOf(err) == KindTransient }

// StatusCode maps a domain error to its HTTP status.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTransient:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
