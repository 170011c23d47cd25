package myevents

import (
	"encoding/json"
	"fmt"
	"time"
)

type EventEnvelope struct {
	UID           string
	CreatedAt     time.Time
	Topic         string
	AggregateUID  string
	EventTypeName string
	EventPayload  string
}

func (e EventEnvelope) String() string {
	return e.Topic + "." + e.EventTypeName + "." + e.AggregateUID
}

// DecodePayload unmarshals the payload of the envelope into event.
func (e EventEnvelope) DecodePayload(event Event) error {
	err := json.Unmarshal([]byte(e.EventPayload), event)
	if err != nil {
		return fmt.Errorf("error parsing payload of %s: %s", e, err)
	}
	return nil
}

type Event interface {
	GetEventTypeName() string
	GetAggregateName() string
}

func ParseEnvelope(data []byte) (EventEnvelope, error) {
	envelope := EventEnvelope{}
	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("error parsing envelope: %s", err)
	}
	return envelope, nil
}
