// Package attendance models per-student attendance records keyed by student id.
package attendance

import (
	"github.com/smartcampus/campus-api/internal/domain/common"
	"github.com/smartcampus/campus-api/internal/store"
)

// DefaultStudentID is the sentinel used when no student is named in the request.
const DefaultStudentID = "generic_student"

// Record is one student's attendance shaped for display.
type Record struct {
	StudentID   string `json:"student_id"`
	Percentage  int    `json:"percentage"`
	Status      string `json:"status"`
	LastUpdated string `json:"last_updated"`
}

// FromDocument shapes a stored attendance document for the global table.
func FromDocument(doc store.Document) Record {
	return Record{
		StudentID:   doc.ID,
		Percentage:  common.IntField(doc.Fields, "percentage", 0),
		Status:      common.StringField(doc.Fields, "status", "Unknown"),
		LastUpdated: common.LastUpdated(doc.Fields, store.TimestampField),
	}
}

// Missing is the record shown on the detail card when a student has no document.
func Missing(studentID string) Record {
	return Record{
		StudentID:   studentID,
		Percentage:  0,
		Status:      "Data Not Found",
		LastUpdated: "N/A",
	}
}

// Fields returns the writable document fields for a merge-upsert.
func Fields(percentage int, status string) map[string]any {
	return map[string]any{
		"percentage": percentage,
		"status":     status,
	}
}
