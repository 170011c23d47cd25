package myevents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/shopclient/lib/mypubsub"
	"github.com/MarcGrol/shopclient/lib/mytime"
)

type Publisher interface {
	CreateTopic(c context.Context, topic string) error
	Publish(c context.Context, topic string, event Event) error
}

type pubsubPublisher struct {
	pubsub    mypubsub.PubSub
	enveloper enveloper
}

// NewPublisher wraps each event in an EventEnvelope and publishes the envelope as json.
func NewPublisher(pubsub mypubsub.PubSub, nower mytime.Nower) *pubsubPublisher {
	return &pubsubPublisher{
		pubsub:    pubsub,
		enveloper: newEnveloper(nower),
	}
}

func (p *pubsubPublisher) CreateTopic(c context.Context, topic string) error {
	return p.pubsub.CreateTopic(c, topic)
}

func (p *pubsubPublisher) Publish(c context.Context, topic string, event Event) error {
	envelope, err := p.enveloper.wrap(topic, event)
	if err != nil {
		return err
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error marshalling envelope %s: %s", envelope, err)
	}

	return p.pubsub.Publish(c, topic, data)
}
