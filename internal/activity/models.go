package activity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSessionLogin   EventType = "session.login"
	EventSessionLogout  EventType = "session.logout"
	EventRegistered     EventType = "profile.registered"
	EventProfileUpdated EventType = "profile.updated"
	EventBookingCreated EventType = "booking.created"
	EventBookingDeleted EventType = "booking.deleted"
	EventVenueCreated   EventType = "venue.created"
	EventVenueUpdated   EventType = "venue.updated"
	EventVenueDeleted   EventType = "venue.deleted"
)

// Event records something a signed-in user did
type Event struct {
	ID         uuid.UUID         `json:"id"`
	Type       EventType         `json:"type"`
	Actor      string            `json:"actor"`
	Subject    string            `json:"subject,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time
func NewEvent(eventType EventType, actor, subject string) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		Actor:      actor,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
	}
}

// With adds one attribute
func (e Event) With(key, value string) Event {
	attrs := make(map[string]string, len(e.Attributes)+1)
	for k, v := range e.Attributes {
		attrs[k] = v
	}
	attrs[key] = value
	e.Attributes = attrs
	return e
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey keeps one actor's events in order
func (e Event) PartitionKey() string {
	if e.Actor == "" {
		return "anonymous"
	}
	return e.Actor
}
