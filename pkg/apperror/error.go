package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError for propagation decisions.
type Kind string

const (
	KindValidation Kind = "validation"
	KindTransport  Kind = "transport"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Kind == KindTransport && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kindForCode(code),
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation reports a missing or malformed field. It is rendered as a 400.
func Validation(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Kind: KindValidation, Message: message}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Error", err)
}

// Transport wraps a network failure (status 0) or a non-2xx response from the
// remote API.
func Transport(status int, message string, err error) *AppError {
	return &AppError{Code: status, Kind: KindTransport, Message: message, Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal for anything unclassified.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func kindForCode(code int) Kind {
	switch {
	case code == http.StatusNotFound:
		return KindNotFound
	case code >= 400 && code < 500:
		return KindValidation
	default:
		return KindInternal
	}
}
