package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing caller input. Mapped to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an id absent from both the primary and the fallback
// store. Mapped to 404.
type NotFoundError struct {
	Resource string
	Id       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.Id)
}

func NewNotFound(resource string, id int64) error {
	return &NotFoundError{Resource: resource, Id: id}
}

// UpstreamError marks a failed primary-store call. The failover gateways
// catch it (and any other primary error) and retry against the fallback
// store; it only reaches a caller when no fallback path exists. Mapped to 503.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("primary store unavailable: %s", e.Op)
	}
	return fmt.Sprintf("primary store failed on %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// InternalError covers unexpected orchestration failures. Mapped to a
// generic 500; the underlying cause goes to the log, never to the caller.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return "internal server error"
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func NewInternal(err error) error {
	return &InternalError{Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
