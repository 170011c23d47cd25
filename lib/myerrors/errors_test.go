package myerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	myErr := fmt.Errorf("my error")

	testCases := []struct {
		name       string
		in         error
		kind       Kind
		httpStatus int
		errorText  string
	}{
		{
			name:       "Unclassified error",
			in:         myErr,
			kind:       KindUnknown,
			httpStatus: 500,
			errorText:  "my error",
		},
		{
			name:       "Invalid argument error",
			in:         NewInvalidArgumentError(myErr),
			kind:       KindInvalidArgument,
			httpStatus: 400,
			errorText:  "my error",
		},
		{
			name:       "Invalid argument errorf",
			in:         NewInvalidArgumentErrorf("%s: %d", myErr.Error(), 123),
			kind:       KindInvalidArgument,
			httpStatus: 400,
			errorText:  "my error: 123",
		},
		{
			name:       "Not found error",
			in:         NewNotFoundError(myErr),
			kind:       KindNotFound,
			httpStatus: 404,
			errorText:  "my error",
		},
		{
			name:       "Remote error",
			in:         NewRemoteError("Not found\nExpired"),
			kind:       KindRemoteFailure,
			httpStatus: 502,
			errorText:  "Not found\nExpired",
		},
		{
			name:       "Transport error",
			in:         NewTransportError(myErr),
			kind:       KindTransportFailure,
			httpStatus: 503,
			errorText:  "my error",
		},
		{
			name:       "Contract violation error",
			in:         NewContractViolationError(myErr),
			kind:       KindContractViolation,
			httpStatus: 500,
			errorText:  "my error",
		},
		{
			name:       "Internal error",
			in:         NewInternalError(myErr),
			kind:       KindInternal,
			httpStatus: 500,
			errorText:  "my error",
		},
		{
			name:       "Cancelled error",
			in:         NewCancelledError(myErr),
			kind:       KindCancelled,
			httpStatus: 499,
			errorText:  "my error",
		},
		{
			name:       "Cancelled context",
			in:         fmt.Errorf("fetch product: %w", context.Canceled),
			kind:       KindCancelled,
			httpStatus: 499,
			errorText:  "fetch product: context canceled",
		},
		{
			name:       "Wrapped classified error",
			in:         fmt.Errorf("context: %w", NewNotFoundError(myErr)),
			kind:       KindNotFound,
			httpStatus: 404,
			errorText:  "context: my error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, GetKind(tc.in))
			assert.Equal(t, tc.httpStatus, GetHTTPStatus(tc.in))
			assert.Equal(t, tc.errorText, tc.in.Error())
		})
	}

	t.Run("Original error remains reachable", func(t *testing.T) {
		err := NewTransportError(myErr)
		assert.True(t, errors.Is(err, myErr))
		assert.True(t, Is(err, KindTransportFailure))
		assert.False(t, Is(nil, KindTransportFailure))
	})
}
