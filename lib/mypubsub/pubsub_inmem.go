package mypubsub

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// InMemoryPubSub keeps every published message. Publishing on a topic that was never created fails,
// like it does on Cloud Pub/Sub.
type InMemoryPubSub struct {
	sync.Mutex
	topics map[string][][]byte
}

func NewInMemoryPubSub(c context.Context) (*InMemoryPubSub, func(), error) {
	return &InMemoryPubSub{
		topics: map[string][][]byte{},
	}, func() {}, nil
}

func (ps *InMemoryPubSub) CreateTopic(c context.Context, topic string) error {
	ps.Lock()
	defer ps.Unlock()

	_, exists := ps.topics[topic]
	if !exists {
		ps.topics[topic] = [][]byte{}
	}
	return nil
}

func (ps *InMemoryPubSub) Publish(c context.Context, topic string, data []byte) error {
	ps.Lock()
	defer ps.Unlock()

	messages, exists := ps.topics[topic]
	if !exists {
		return fmt.Errorf("error publishing on topic %s: topic does not exist", topic)
	}
	ps.topics[topic] = append(messages, slices.Clone(data))

	return nil
}

// Published returns the messages of topic in publication order.
func (ps *InMemoryPubSub) Published(topic string) [][]byte {
	ps.Lock()
	defer ps.Unlock()

	return slices.Clone(ps.topics[topic])
}
