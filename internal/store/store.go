package store

import (
	"context"
	"errors"
)

// Record type names, each a collection under the tenant namespace.
const (
	Events        = "events"
	Registrations = "registrations"
	Circulars     = "circulars"
	Results       = "results"
	Attendance    = "attendance"
)

// TimestampField is the server-assigned last-write field present on every document.
const TimestampField = "timestamp"

// ErrNotFound is returned by Get when no document exists for the id.
var ErrNotFound = errors.New("document not found")

// Document is a stored record with its collection-unique id.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the document store contract. All collections live under
// artifacts/{appID}/public/data/{recordType}. Writes stamp the timestamp
// field server-side; callers never supply timestamps.
type Store interface {
	// Create adds a document with a generated id and returns the id.
	Create(ctx context.Context, recordType string, fields map[string]any) (string, error)
	// ListAll returns every document in the collection, newest first when
	// byTimestampDesc is set.
	ListAll(ctx context.Context, recordType string, byTimestampDesc bool) ([]Document, error)
	// Get returns a single document or ErrNotFound.
	Get(ctx context.Context, recordType, id string) (Document, error)
	// SetMerge creates or updates the document with the given id, leaving
	// fields not present in the write untouched.
	SetMerge(ctx context.Context, recordType, id string, fields map[string]any) error
	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, recordType, id string) error
}

// CollectionPath builds the namespaced collection path for a record type.
func CollectionPath(appID, recordType string) string {
	return "artifacts/" + appID + "/public/data/" + recordType
}
