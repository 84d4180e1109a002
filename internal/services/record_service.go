package services

import (
	"context"
	"strings"

	"github.com/smartcampus/campus-api/internal/domain/record"
	"github.com/smartcampus/campus-api/internal/logger"
	"github.com/smartcampus/campus-api/internal/store"
)

// RecordService is the shared read/write logic for the circulars and results
// collections. The two instantiations must behave identically; only the
// record type name differs.
type RecordService struct {
	store store.Store
}

// NewRecordService creates the service over the given store handle, which may
// be nil when the store never initialized.
func NewRecordService(s store.Store) *RecordService {
	return &RecordService{store: s}
}

// List returns all records of the type, newest first, shaped for display.
func (s *RecordService) List(ctx context.Context, recordType string) ([]record.PublicRecord, error) {
	if s.store == nil {
		return nil, unavailableErr("Database unavailable.")
	}

	docs, err := s.store.ListAll(ctx, recordType, true)
	if err != nil {
		logger.Service("records").Error("list failed", "record_type", recordType, "error", err)
		return nil, upstreamErr("Failed to fetch " + recordType + " records.")
	}

	records := make([]record.PublicRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, record.FromDocument(doc))
	}
	return records, nil
}

// Save merge-upserts a record under the caller-supplied id and returns the
// success message naming the record type. All three fields are required.
func (s *RecordService) Save(ctx context.Context, recordType, docID, title, details string) (string, error) {
	if s.store == nil {
		return "", unavailableErr("Database unavailable.")
	}

	if docID == "" || title == "" || details == "" {
		return "", validationErr("Missing required fields (ID, Title, Details).")
	}

	if err := s.store.SetMerge(ctx, recordType, docID, record.Fields(title, details)); err != nil {
		logger.Service("records").Error("save failed", "record_type", recordType, "doc_id", docID, "error", err)
		return "", upstreamErr("Failed to save " + recordType + " record.")
	}
	return capitalize(recordType) + " record saved successfully!", nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
