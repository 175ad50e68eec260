package model

import "time"

// SystemRole separates app administration from organization membership.
// Admins manage the app and its user accounts; org users act within the
// organization according to their position.
type SystemRole string

// System roles.
const (
	RoleAdmin   SystemRole = "admin"
	RoleOrgUser SystemRole = "org_user"
)

// UserAccount links a local login identity to an optional member record.
// This is a role picker, not a credential system.
type UserAccount struct {
	CreatedAt   time.Time   `json:"createdAt"`
	ID          string      `json:"id"`
	DisplayName string      `json:"displayName"`
	SystemRole  SystemRole  `json:"systemRole"`
	MemberID    string      `json:"memberId,omitempty"`
	Position    OrgPosition `json:"orgPosition,omitempty"`
	IsActive    bool        `json:"isActive"`
}
