package event

import (
	"github.com/google/uuid"

	"github.com/smartcampus/campus-api/internal/domain/common"
	"github.com/smartcampus/campus-api/internal/store"
)

// Event is a campus event as shown on the events page. Events are created by
// an admin, readable by anyone, deleted by id and never updated in place.
type Event struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Details string `json:"details"`
}

// FromDocument shapes a stored document into an Event, attaching the document id.
func FromDocument(doc store.Document) Event {
	return Event{
		ID:      doc.ID,
		Title:   common.StringField(doc.Fields, "title", ""),
		Date:    common.StringField(doc.Fields, "date", ""),
		Time:    common.StringField(doc.Fields, "time", ""),
		Details: common.StringField(doc.Fields, "details", ""),
	}
}

// Fields returns the writable document fields. The write timestamp is stamped
// by the store, never here.
func (e Event) Fields() map[string]any {
	return map[string]any{
		"title":   e.Title,
		"date":    e.Date,
		"time":    e.Time,
		"details": e.Details,
	}
}

// Registration records one anonymous sign-up for an event. Each submission
// gets a fresh random user id; there is no deduplication and the event id is
// not checked against the events collection.
type Registration struct {
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
}

// NewRegistration creates a registration with a generated user id.
func NewRegistration(eventID string) Registration {
	return Registration{
		EventID: eventID,
		UserID:  uuid.NewString(),
	}
}

// Fields returns the writable document fields for the registration.
func (r Registration) Fields() map[string]any {
	return map[string]any{
		"event_id": r.EventID,
		"user_id":  r.UserID,
	}
}

// RegistrationEventID reads the referenced event id from a stored registration.
func RegistrationEventID(doc store.Document) string {
	return common.StringField(doc.Fields, "event_id", "")
}
