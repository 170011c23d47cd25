package mystore

import (
	"context"
)

type ctxTransactionKey struct{}

// Store persists entities of type T under a string uid.
type Store[T any] interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
}

// New returns a Cloud Datastore backed store when a Google Cloud project is configured and an
// in-memory store otherwise. The returned func releases the underlying client.
func New[T any](c context.Context, googleCloudProject string) (Store[T], func(), error) {
	if googleCloudProject != "" {
		return newGcloudStore[T](c, googleCloudProject)
	}

	return NewInMemoryStore[T](c)
}

func inTransaction(c context.Context) bool {
	return c.Value(ctxTransactionKey{}) != nil
}
