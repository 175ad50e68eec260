package storage

import (
	"context"
	"time"

	"orghub/internal/model"
)

// ListAttendance returns every stored attendance record.
func (s *Store) ListAttendance(ctx context.Context) ([]model.AttendanceRecord, error) {
	return listCollection[model.AttendanceRecord](ctx, s, KeyAttendance)
}

// UpsertAttendance records whether a member was present at an event. The
// (eventID, memberID) pair identifies the record; a second write for the
// same pair replaces the first.
func (s *Store) UpsertAttendance(ctx context.Context, eventID, memberID string, present bool) (model.AttendanceRecord, error) {
	if err := validateString(eventID, "event ID"); err != nil {
		return model.AttendanceRecord{}, err
	}
	if err := validateString(memberID, "member ID"); err != nil {
		return model.AttendanceRecord{}, err
	}

	records, err := s.ListAttendance(ctx)
	if err != nil {
		return model.AttendanceRecord{}, err
	}

	record := model.AttendanceRecord{
		EventID:    eventID,
		MemberID:   memberID,
		Present:    present,
		RecordedAt: time.Now(),
	}

	replaced := false
	for i := range records {
		if records[i].EventID == eventID && records[i].MemberID == memberID {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	if err := saveCollection(ctx, s, KeyAttendance, records); err != nil {
		return model.AttendanceRecord{}, err
	}
	return record, nil
}
