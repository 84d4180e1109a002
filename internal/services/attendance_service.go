package services

import (
	"context"
	"errors"

	"github.com/smartcampus/campus-api/internal/domain/attendance"
	"github.com/smartcampus/campus-api/internal/logger"
	"github.com/smartcampus/campus-api/internal/store"
	"github.com/smartcampus/campus-api/internal/validation"
)

// AttendanceService reads the global attendance table and upserts per-student
// records keyed by student id.
type AttendanceService struct {
	store store.Store
}

// NewAttendanceService creates the service over the given store handle.
func NewAttendanceService(s store.Store) *AttendanceService {
	return &AttendanceService{store: s}
}

// Overview returns every student's record sorted by id, plus the focused
// student's record for the detail card. A missing focused student gets the
// "Data Not Found" placeholder; a store failure degrades to an empty table.
func (s *AttendanceService) Overview(ctx context.Context, focusedID string) ([]attendance.Record, attendance.Record) {
	if focusedID == "" {
		focusedID = attendance.DefaultStudentID
	}
	focused := attendance.Missing(focusedID)

	if s.store == nil {
		return nil, focused
	}

	docs, err := s.store.ListAll(ctx, store.Attendance, false)
	if err != nil {
		logger.Service("attendance").Error("list failed", "error", err)
		return nil, focused
	}

	all := make([]attendance.Record, 0, len(docs))
	for _, doc := range docs {
		rec := attendance.FromDocument(doc)
		all = append(all, rec)
		if rec.StudentID == focusedID {
			focused = rec
		}
	}
	return all, focused
}

// Update merge-upserts a student's attendance. Percentage must parse as an
// integer or nothing is written.
func (s *AttendanceService) Update(ctx context.Context, studentID, percentageStr, status string) (string, error) {
	if s.store == nil {
		return "", unavailableErr("Database unavailable.")
	}
	if studentID == "" || percentageStr == "" || status == "" {
		return "", validationErr("Missing required fields (Student ID, Percentage, Status).")
	}

	percentage, err := validation.ParsePercentage(percentageStr)
	if err != nil {
		return "", validationErr("Percentage must be a whole number.")
	}

	if err := s.store.SetMerge(ctx, store.Attendance, studentID, attendance.Fields(percentage, status)); err != nil {
		logger.Service("attendance").Error("update failed", "student_id", studentID, "error", err)
		return "", upstreamErr("Failed to save attendance record.")
	}
	return "Attendance for " + studentID + " updated successfully!", nil
}

// Get returns one student's record, or the placeholder when absent.
func (s *AttendanceService) Get(ctx context.Context, studentID string) attendance.Record {
	if s.store == nil {
		return attendance.Missing(studentID)
	}

	doc, err := s.store.Get(ctx, store.Attendance, studentID)
	if errors.Is(err, store.ErrNotFound) {
		return attendance.Missing(studentID)
	}
	if err != nil {
		logger.Service("attendance").Error("get failed", "student_id", studentID, "error", err)
		return attendance.Missing(studentID)
	}
	return attendance.FromDocument(doc)
}
