package myerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindNotFound
	KindRemoteFailure
	KindTransportFailure
	KindContractViolation
	KindInternal
	KindCancelled
)

// StatusClientClosedRequest is the non-standard status for a request abandoned before it completed.
const StatusClientClosedRequest = 499

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindNotFound:
		return "NotFound"
	case KindRemoteFailure:
		return "RemoteFailure"
	case KindTransportFailure:
		return "TransportFailure"
	case KindContractViolation:
		return "ContractViolation"
	case KindInternal:
		return "Internal"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

var httpStatusPerKind = map[Kind]int{
	KindInvalidArgument:   http.StatusBadRequest,
	KindNotFound:          http.StatusNotFound,
	KindRemoteFailure:     http.StatusBadGateway,
	KindTransportFailure:  http.StatusServiceUnavailable,
	KindContractViolation: http.StatusInternalServerError,
	KindInternal:          http.StatusInternalServerError,
	KindCancelled:         StatusClientClosedRequest,
}

type kindError struct {
	kind Kind
	err  error
}

// Error returns the message of the wrapped error as is: callers show it to users.
func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Unwrap() error {
	return e.err
}

func (e *kindError) Kind() Kind {
	return e.kind
}

func newError(kind Kind, err error) *kindError {
	return &kindError{
		kind: kind,
		err:  err,
	}
}

func NewInvalidArgumentError(err error) error {
	return newError(KindInvalidArgument, err)
}

func NewInvalidArgumentErrorf(format string, args ...any) error {
	return NewInvalidArgumentError(fmt.Errorf(format, args...))
}

func NewNotFoundError(err error) error {
	return newError(KindNotFound, err)
}

// NewRemoteError reports a response whose error list was not empty.
func NewRemoteError(message string) error {
	return newError(KindRemoteFailure, errors.New(message))
}

func NewTransportError(err error) error {
	return newError(KindTransportFailure, err)
}

func NewContractViolationError(err error) error {
	return newError(KindContractViolation, err)
}

func NewInternalError(err error) error {
	return newError(KindInternal, err)
}

func NewCancelledError(err error) error {
	return newError(KindCancelled, err)
}

// GetKind returns the kind of the outermost classified error in the chain.
// An unclassified context.Canceled counts as KindCancelled.
func GetKind(err error) Kind {
	var kinded interface{ Kind() Kind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	if errors.Is(err, context.Canceled) {
		return KindCancelled
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}

func GetHTTPStatus(err error) int {
	status, found := httpStatusPerKind[GetKind(err)]
	if !found {
		return http.StatusInternalServerError
	}
	return status
}
