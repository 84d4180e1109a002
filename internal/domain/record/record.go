// Package record models the public records shared by the circulars and
// results collections. Both use the same shape; only the record type differs.
package record

import (
	"github.com/smartcampus/campus-api/internal/domain/common"
	"github.com/smartcampus/campus-api/internal/store"
)

// PublicRecord is a circular or result entry shaped for display.
type PublicRecord struct {
	DocID       string `json:"doc_id"`
	Title       string `json:"title"`
	Details     string `json:"details"`
	LastUpdated string `json:"last_updated"`
}

// FromDocument shapes a stored document, applying the display defaults.
func FromDocument(doc store.Document) PublicRecord {
	return PublicRecord{
		DocID:       doc.ID,
		Title:       common.StringField(doc.Fields, "title", "No Title"),
		Details:     common.StringField(doc.Fields, "details", "No Details"),
		LastUpdated: common.LastUpdated(doc.Fields, store.TimestampField),
	}
}

// Fields returns the writable document fields for a merge-upsert.
func Fields(title, details string) map[string]any {
	return map[string]any{
		"title":   title,
		"details": details,
	}
}
