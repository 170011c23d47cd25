package interactor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MarcGrol/shopclient/lib/mygraphql"
)

// fakeCall answers with a canned response. When gate is set Execute blocks until it is closed.
type fakeCall[T any] struct {
	resp      mygraphql.Response[T]
	err       error
	gate      chan struct{}
	started   chan struct{}
	executed  atomic.Int32
	cancelled atomic.Int32
}

func respondWith[T any](data *T, errs ...mygraphql.Error) *fakeCall[T] {
	return &fakeCall[T]{
		resp:    mygraphql.Response[T]{Data: data, Errors: errs},
		started: make(chan struct{}),
	}
}

func failWith[T any](err error) *fakeCall[T] {
	return &fakeCall[T]{
		err:     err,
		started: make(chan struct{}),
	}
}

func (f *fakeCall[T]) blocking() *fakeCall[T] {
	f.gate = make(chan struct{})
	return f
}

func (f *fakeCall[T]) Execute(c context.Context) (mygraphql.Response[T], error) {
	f.executed.Add(1)
	close(f.started)

	if f.gate != nil {
		select {
		case <-f.gate:
		case <-c.Done():
			return mygraphql.Response[T]{}, c.Err()
		}
	}
	return f.resp, f.err
}

func (f *fakeCall[T]) Cancel() {
	f.cancelled.Add(1)
}

func awaitContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
