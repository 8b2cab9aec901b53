// Package errors defines typed gallery application errors and their HTTP
// status mapping.
package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio.gallery/internal/services/gallery/storage"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
)

// Error is a typed gallery application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the wrapped cause.
func (e Error) Unwrap() error {
	return e.Err
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap builds a typed Error around cause.
func Wrap(kind Kind, message string, cause error) error {
	return Error{Kind: kind, Message: message, Err: cause}
}

// KindOf returns the classified kind for err, inferring it from storage
// sentinels and context errors when err is untyped.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) && appErr.Kind != "" && appErr.Kind != KindUnknown {
		return appErr.Kind
	}
	switch {
	case stderrors.Is(err, storage.ErrNotFound):
		return KindNotFound
	case stderrors.Is(err, context.DeadlineExceeded):
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
