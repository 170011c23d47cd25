// Package myasync turns a blocking, cancellable remote call into a single-value asynchronous result.
//
// A Single completes exactly once: with the value of the call, with its error, or with ErrCancelled
// when it was cancelled first. Panics raised by a call are not recovered: they signal a broken
// process and must crash it.
package myasync

import (
	"context"
	"errors"
	"sync"

	"github.com/MarcGrol/shopclient/lib/myerrors"
)

var ErrCancelled = myerrors.NewCancelledError(errors.New("remote call cancelled"))

// RemoteCall is a single pending remote operation. Execute is invoked at most once.
// Cancel may be invoked from another goroutine while Execute is running.
type RemoteCall[T any] interface {
	Execute(c context.Context) (T, error)
	Cancel()
}

type Single[T any] struct {
	sync.Mutex
	done      chan struct{}
	completed bool
	value     T
	err       error
	onCancel  func()
}

func newSingle[T any](onCancel func()) *Single[T] {
	return &Single[T]{
		done:     make(chan struct{}),
		onCancel: onCancel,
	}
}

// FromCall starts the call on its own goroutine and returns immediately.
func FromCall[T any](c context.Context, call RemoteCall[T]) *Single[T] {
	ctx, cancel := context.WithCancel(c)

	s := newSingle[T](func() {
		cancel()
		call.Cancel()
	})

	go func() {
		defer cancel()

		value, err := call.Execute(ctx)
		s.complete(value, err)
	}()

	return s
}

func Just[T any](value T) *Single[T] {
	s := newSingle[T](nil)
	s.complete(value, nil)
	return s
}

func Fail[T any](err error) *Single[T] {
	var zero T
	s := newSingle[T](nil)
	s.complete(zero, err)
	return s
}

// Map derives a new single from upstream. f only runs when upstream succeeded.
// Cancelling the derived single cancels upstream.
func Map[T, R any](upstream *Single[T], f func(T) (R, error)) *Single[R] {
	s := newSingle[R](upstream.Cancel)

	go func() {
		<-upstream.done

		var zero R
		if upstream.err != nil {
			s.complete(zero, upstream.err)
			return
		}

		value, err := f(upstream.value)
		s.complete(value, err)
	}()

	return s
}

// complete stores the outcome when no outcome was stored before and reports whether it did.
func (s *Single[T]) complete(value T, err error) bool {
	s.Lock()
	defer s.Unlock()

	if s.completed {
		return false
	}

	s.value = value
	s.err = err
	s.completed = true
	close(s.done)

	return true
}

// Cancel completes the single with ErrCancelled and cancels the underlying call.
// Without effect when the single already completed.
func (s *Single[T]) Cancel() {
	var zero T
	if s.complete(zero, ErrCancelled) && s.onCancel != nil {
		s.onCancel()
	}
}

func (s *Single[T]) Done() <-chan struct{} {
	return s.done
}

// Await blocks until the single completes or c expires. An expiring c does not cancel the single.
func (s *Single[T]) Await(c context.Context) (T, error) {
	select {
	case <-s.done:
		return s.value, s.err
	case <-c.Done():
		var zero T
		return zero, c.Err()
	}
}
