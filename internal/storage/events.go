package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orghub/internal/common"
	"orghub/internal/model"
)

// ListEvents returns every stored event.
func (s *Store) ListEvents(ctx context.Context) ([]model.OrgEvent, error) {
	return listCollection[model.OrgEvent](ctx, s, KeyEvents)
}

// CreateEvent appends a new event to the collection.
func (s *Store) CreateEvent(ctx context.Context, e model.OrgEvent) (model.OrgEvent, error) {
	if err := validateEvent(&e); err != nil {
		return model.OrgEvent{}, err
	}

	events, err := s.ListEvents(ctx)
	if err != nil {
		return model.OrgEvent{}, err
	}

	e.ID = newID()
	e.CreatedAt = time.Now()
	events = append(events, e)
	if err := saveCollection(ctx, s, KeyEvents, events); err != nil {
		return model.OrgEvent{}, err
	}

	slog.Info("created event", "id", e.ID, "title", e.Title)
	return e, nil
}

// UpdateEvent replaces the stored event with the same ID.
func (s *Store) UpdateEvent(ctx context.Context, e model.OrgEvent) (model.OrgEvent, error) {
	if err := validateString(e.ID, "event ID"); err != nil {
		return model.OrgEvent{}, err
	}
	if err := validateEvent(&e); err != nil {
		return model.OrgEvent{}, err
	}

	events, err := s.ListEvents(ctx)
	if err != nil {
		return model.OrgEvent{}, err
	}

	for i := range events {
		if events[i].ID == e.ID {
			e.CreatedAt = events[i].CreatedAt
			events[i] = e
			if err := saveCollection(ctx, s, KeyEvents, events); err != nil {
				return model.OrgEvent{}, err
			}
			return e, nil
		}
	}
	return model.OrgEvent{}, fmt.Errorf("%w: event %s", common.ErrNotFound, e.ID)
}

// DeleteEvent removes an event and cascades to every attendance record
// referencing it.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	if err := validateString(id, "event ID"); err != nil {
		return err
	}

	events, err := s.ListEvents(ctx)
	if err != nil {
		return err
	}
	attendance, err := s.ListAttendance(ctx)
	if err != nil {
		return err
	}

	remaining := events[:0]
	for _, e := range events {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == len(events) {
		return fmt.Errorf("%w: event %s", common.ErrNotFound, id)
	}

	keptRecords := attendance[:0]
	for _, r := range attendance {
		if r.EventID != id {
			keptRecords = append(keptRecords, r)
		}
	}

	if err := saveCollection(ctx, s, KeyEvents, remaining); err != nil {
		return err
	}
	if err := saveCollection(ctx, s, KeyAttendance, keptRecords); err != nil {
		return err
	}

	slog.Info("deleted event", "id", id, "attendance_removed", len(attendance)-len(keptRecords))
	return nil
}
