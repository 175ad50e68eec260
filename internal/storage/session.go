package storage

import (
	"context"
	"time"
)

// Session is the persisted "who is signed in" record.
type Session struct {
	SignedInAt time.Time `json:"signedInAt"`
	UserID     string    `json:"userId"`
}

// GetSession returns the persisted session, if any.
func (s *Store) GetSession(ctx context.Context) (Session, bool, error) {
	var session Session
	ok, err := getSingleton(ctx, s, KeySession, &session)
	if err != nil {
		return Session{}, false, err
	}
	if !ok || session.UserID == "" {
		return Session{}, false, nil
	}
	return session, true, nil
}

// SaveSession persists the session.
func (s *Store) SaveSession(ctx context.Context, session Session) error {
	if err := validateString(session.UserID, "user ID"); err != nil {
		return err
	}
	if session.SignedInAt.IsZero() {
		session.SignedInAt = time.Now()
	}
	return saveSingleton(ctx, s, KeySession, session)
}

// ClearSession removes the persisted session.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return s.deleteRaw(ctx, KeySession)
}
