package usecase

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrNotConfigured         = errors.New("dependency not configured")
	ErrUpstreamRejected      = errors.New("upstream rejected request")
	ErrUpstreamMalformed     = errors.New("upstream returned malformed payload")
	ErrStorage               = errors.New("storage failure")
)

type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureTransport FailureKind = "transport"
	FailureProtocol  FailureKind = "protocol"
	FailureMalformed FailureKind = "malformed"
	FailureStorage   FailureKind = "storage"
	FailureConfig    FailureKind = "configuration"
	FailureInvalid   FailureKind = "invalid"
	FailureNotFound  FailureKind = "not_found"
	FailureInternal  FailureKind = "internal"
)

// ClassifyFailure maps an error returned by a service to its failure kind.
func ClassifyFailure(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrDependencyUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return FailureTransport
	case errors.Is(err, ErrNotConfigured):
		return FailureConfig
	case errors.Is(err, ErrUpstreamRejected):
		return FailureProtocol
	case errors.Is(err, ErrUpstreamMalformed):
		return FailureMalformed
	case errors.Is(err, ErrStorage):
		return FailureStorage
	case errors.Is(err, ErrInvalidInput):
		return FailureInvalid
	case errors.Is(err, ErrNotFound):
		return FailureNotFound
	default:
		return FailureInternal
	}
}

// Retryable reports whether a manual retry of the same action may succeed.
func (k FailureKind) Retryable() bool {
	return k == FailureTransport
}
