package pkg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy shared by usecases, the upstream
// client and the HTTP adapter. Wrap with fmt.Errorf("%w: detail", ...) and
// check with errors.Is.
var (
	// ErrValidation marks caller input errors. They are resolved locally and
	// never reach the network.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized marks a missing or rejected credential. Never retried.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict marks an optimistic version mismatch. Callers should
	// re-fetch the entity, not retry the write.
	ErrConflict = errors.New("version conflict")

	// ErrNotFound marks an absent upstream entity.
	ErrNotFound = errors.New("not found")

	// ErrUpstream marks a non-2xx upstream response carrying a message.
	ErrUpstream = errors.New("upstream error")

	// ErrBadGateway marks a transport-level failure (no upstream response).
	// The only retryable kind.
	ErrBadGateway = errors.New("bad gateway")
)

// IsRetryable reports whether the retry policy may re-issue the failed request.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return false
	}
	return errors.Is(err, ErrBadGateway)
}

// AppError is the structured error returned across HTTP boundaries.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON body written for failed requests.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// UpstreamStatusError carries the HTTP status code the backend answered with,
// alongside its message payload. It wraps one of the sentinels above so
// errors.Is keeps working.
type UpstreamStatusError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}

func (e *UpstreamStatusError) Unwrap() error { return e.Kind }
