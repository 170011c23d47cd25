package mypubsub

import (
	"context"
)

// PubSub delivers opaque messages to named topics.
//
//go:generate mockgen -source=api.go -package mypubsub -destination pubsub_mock.go PubSub
type PubSub interface {
	CreateTopic(c context.Context, topic string) error
	Publish(c context.Context, topic string, data []byte) error
}

// New returns a Cloud Pub/Sub client when a Google Cloud project is configured and an
// in-memory implementation otherwise. The returned func releases the underlying client.
func New(c context.Context, googleCloudProject string) (PubSub, func(), error) {
	if googleCloudProject != "" {
		return newGcloudPubSub(c, googleCloudProject)
	}

	return NewInMemoryPubSub(c)
}
