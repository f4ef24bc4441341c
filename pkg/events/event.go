// Package events defines the domain events published to the bus.
package events

import "time"

// Event is anything the publisher can put on a subject. Payload is marshalled as JSON.
type Event interface {
	EventType() string
	Payload() any
	Timestamp() time.Time
}

// occurred carries the time an event was raised; it is not part of the payload.
type occurred struct {
	at time.Time
}

func now() occurred {
	return occurred{at: time.Now()}
}

func (o occurred) Timestamp() time.Time {
	return o.at
}
