package services

import (
	"context"
	"fmt"

	"github.com/smartcampus/campus-api/internal/ai"
	"github.com/smartcampus/campus-api/internal/domain/event"
	"github.com/smartcampus/campus-api/internal/logger"
	"github.com/smartcampus/campus-api/internal/store"
)

// NoRegistrationsReport is returned by AnalyzeRegistrations when the event has
// no registrations; the completion adapter is not called in that case.
const NoRegistrationsReport = "No registrations recorded yet."

const summaryPrompt = "Write a short, engaging, 1-2 sentence social media caption for a student event titled '%s'. " +
	"The event details are: %s. The tone should be exciting and informal."

const analysisPrompt = "Act as a campus analyst. Analyze this registration data for an event: Total Registrations: %d. " +
	"Provide a brief, single-paragraph summary of the current engagement status and future expected turnout. " +
	"The current total is %d."

// EventService handles event CRUD, public registration and the AI-assisted
// summary and registration-analysis operations.
type EventService struct {
	store     store.Store
	completer ai.Completer
}

// NewEventService creates the service. The store handle may be nil; the
// completer is never nil (the adapter degrades instead of disappearing).
func NewEventService(s store.Store, completer ai.Completer) *EventService {
	return &EventService{store: s, completer: completer}
}

// Create writes a new event document. All four fields must be present.
func (s *EventService) Create(ctx context.Context, title, date, timeOfDay, details string) error {
	if s.store == nil {
		return unavailableErr("Database unavailable.")
	}
	if title == "" || date == "" || timeOfDay == "" || details == "" {
		return validationErr("Missing required fields (Title, Date, Time, Details).")
	}

	evt := event.Event{Title: title, Date: date, Time: timeOfDay, Details: details}
	if _, err := s.store.Create(ctx, store.Events, evt.Fields()); err != nil {
		logger.Service("events").Error("create failed", "error", err)
		return upstreamErr("Failed to save event.")
	}
	return nil
}

// Delete removes an event by id. Registrations referencing it are left alone.
func (s *EventService) Delete(ctx context.Context, eventID string) error {
	if s.store == nil {
		return unavailableErr("Database unavailable.")
	}

	if err := s.store.Delete(ctx, store.Events, eventID); err != nil {
		logger.Service("events").Error("delete failed", "event_id", eventID, "error", err)
		return upstreamErr("Failed to delete event.")
	}
	return nil
}

// Register records a public sign-up for the event and returns the generated
// user id. The event id is not checked against the events collection.
func (s *EventService) Register(ctx context.Context, eventID string) (string, error) {
	if s.store == nil {
		return "", unavailableErr("Database unavailable.")
	}

	reg := event.NewRegistration(eventID)
	if _, err := s.store.Create(ctx, store.Registrations, reg.Fields()); err != nil {
		logger.Service("events").Error("registration failed", "event_id", eventID, "error", err)
		return "", upstreamErr("Failed to save registration record.")
	}
	return reg.UserID, nil
}

// List returns all events newest first. A read failure yields an empty list;
// the events page still renders.
func (s *EventService) List(ctx context.Context) []event.Event {
	if s.store == nil {
		return nil
	}

	docs, err := s.store.ListAll(ctx, store.Events, true)
	if err != nil {
		logger.Service("events").Error("list failed", "error", err)
		return nil
	}

	events := make([]event.Event, 0, len(docs))
	for _, doc := range docs {
		events = append(events, event.FromDocument(doc))
	}
	return events
}

// GenerateSummary asks the model for a social-media caption for the event.
func (s *EventService) GenerateSummary(ctx context.Context, title, details string) (string, error) {
	if title == "" {
		title = "Campus Event"
	}

	summary, err := s.completer.Complete(ctx, fmt.Sprintf(summaryPrompt, title, details))
	if err != nil {
		logger.Service("events").Error("summary generation failed", "error", err)
		return "", upstreamErr("Failed to generate summary.")
	}
	return summary, nil
}

// AnalyzeRegistrations counts registrations for the event and asks the model
// for an engagement report. The count is a client-side scan of the full
// registrations collection; an indexed query would change performance, not
// the contract. Zero registrations short-circuits without an AI call.
func (s *EventService) AnalyzeRegistrations(ctx context.Context, eventID string) (string, error) {
	if s.store == nil {
		return "", unavailableErr("Database unavailable.")
	}

	docs, err := s.store.ListAll(ctx, store.Registrations, false)
	if err != nil {
		logger.Service("events").Error("registration scan failed", "event_id", eventID, "error", err)
		return "", upstreamErr("Failed to generate analysis report.")
	}

	total := 0
	for _, doc := range docs {
		if event.RegistrationEventID(doc) == eventID {
			total++
		}
	}
	if total == 0 {
		return NoRegistrationsReport, nil
	}

	report, err := s.completer.Complete(ctx, fmt.Sprintf(analysisPrompt, total, total))
	if err != nil {
		logger.Service("events").Error("analysis generation failed", "event_id", eventID, "error", err)
		return "", upstreamErr("Failed to generate analysis report.")
	}
	return report, nil
}
