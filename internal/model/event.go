package model

import "time"

// OrgEvent is an organization event members can attend.
type OrgEvent struct {
	CreatedAt   time.Time `json:"createdAt"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Location    string    `json:"location,omitempty"`
	AttendeeIDs []string  `json:"attendeeIds,omitempty"`
}

// AttendanceRecord marks whether a member attended an event. Records are
// keyed by the (EventID, MemberID) pair; writing the same pair again
// replaces the earlier record.
type AttendanceRecord struct {
	RecordedAt time.Time `json:"recordedAt"`
	EventID    string    `json:"eventId"`
	MemberID   string    `json:"memberId"`
	Present    bool      `json:"present"`
}

// Group is a named subset of members.
type Group struct {
	CreatedAt   time.Time `json:"createdAt"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	MemberIDs   []string  `json:"memberIds,omitempty"`
}
