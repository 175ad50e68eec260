// Package model defines the entities persisted by the orghub store.
package model

import (
	"strings"
	"time"
)

// MemberStatus is the lifecycle state of a member.
type MemberStatus string

// Member statuses.
const (
	StatusActive    MemberStatus = "active"
	StatusInactive  MemberStatus = "inactive"
	StatusApplicant MemberStatus = "applicant"
)

// OrgPosition is a member's role within the organization.
type OrgPosition string

// Organization positions.
const (
	PositionMember          OrgPosition = "member"
	PositionApplicant       OrgPosition = "applicant"
	PositionPatron          OrgPosition = "patron"
	PositionChairperson     OrgPosition = "chairperson"
	PositionSecretary       OrgPosition = "secretary"
	PositionTreasurer       OrgPosition = "treasurer"
	PositionAuditor         OrgPosition = "auditor"
	PositionCommitteeMember OrgPosition = "committee_member"
)

// Member is a person belonging to the organization.
type Member struct {
	CreatedAt      time.Time    `json:"createdAt"`
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	PrimaryPhone   string       `json:"primaryPhone,omitempty"`
	SecondaryPhone string       `json:"secondaryPhone,omitempty"`
	Email          string       `json:"email,omitempty"`
	DOB            string       `json:"dob,omitempty"`
	Address        string       `json:"address,omitempty"`
	JoinDate       string       `json:"joinDate"`
	Status         MemberStatus `json:"status"`
	Position       OrgPosition  `json:"orgPosition"`
	AvatarColor    string       `json:"avatarColor,omitempty"`
	Avatar         string       `json:"avatar,omitempty"`
}

// NormalizeOrgPosition folds legacy spellings of a position into the
// canonical enum. Unrecognized input is treated as an ordinary member.
func NormalizeOrgPosition(raw string) OrgPosition {
	cleaned := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
	cleaned = strings.ReplaceAll(cleaned, " ", "_")
	switch OrgPosition(cleaned) {
	case PositionApplicant, PositionPatron, PositionChairperson, PositionSecretary,
		PositionTreasurer, PositionAuditor, PositionCommitteeMember:
		return OrgPosition(cleaned)
	}
	switch cleaned {
	case "chairman", "chair":
		return PositionChairperson
	case "committee":
		return PositionCommitteeMember
	}
	return PositionMember
}

// NormalizeMemberStatus folds legacy status values into the canonical enum.
// Unrecognized input is treated as active.
func NormalizeMemberStatus(raw string) MemberStatus {
	switch MemberStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusInactive:
		return StatusInactive
	case StatusApplicant:
		return StatusApplicant
	}
	return StatusActive
}
