// Package access implements the stateless role-to-permission policy.
// Decisions depend only on the profile passed in; unknown permissions are
// always denied.
package access

import "orghub/internal/model"

// Permission names one grantable capability.
type Permission string

// The full permission set.
const (
	SystemManage            Permission = "system.manage"
	UsersManage             Permission = "users.manage"
	UsersView               Permission = "users.view"
	MembersViewAll          Permission = "members.view_all"
	MembersManage           Permission = "members.manage"
	MembersViewSelf         Permission = "members.view_self"
	MembersApply            Permission = "members.apply"
	FinanceViewAll          Permission = "finance.view_all"
	FinanceManage           Permission = "finance.manage"
	FinanceViewSelf         Permission = "finance.view_self"
	ReportsViewAll          Permission = "reports.view_all"
	EventsManage            Permission = "events.manage"
	EventsViewPublic        Permission = "events.view_public"
	AnnouncementsManage     Permission = "announcements.manage"
	AnnouncementsViewPublic Permission = "announcements.view_public"
)

// Profile is the input to every access decision.
type Profile struct {
	SystemRole   model.SystemRole
	OrgPosition  model.OrgPosition
	MemberStatus model.MemberStatus
	MemberID     string
}

var committeePositions = map[model.OrgPosition]bool{
	model.PositionPatron:          true,
	model.PositionChairperson:     true,
	model.PositionSecretary:       true,
	model.PositionTreasurer:       true,
	model.PositionAuditor:         true,
	model.PositionCommitteeMember: true,
}

// IsCommitteePosition reports whether a position carries committee powers.
func IsCommitteePosition(position model.OrgPosition) bool {
	return committeePositions[position]
}

func isApplicant(p Profile) bool {
	position := p.OrgPosition
	if position == "" {
		position = model.PositionMember
	}
	status := p.MemberStatus
	if status == "" {
		status = model.StatusActive
	}
	return position == model.PositionApplicant || status == model.StatusApplicant
}

// CanAccess decides one permission for one profile.
//
// Admins only control the app itself and its user accounts, never the
// organization's operations. Committee positions get everything except
// system and user management. Applicants may apply and see their own record
// and public items. Regular members are limited to self and public scope.
func CanAccess(p Profile, permission Permission) bool {
	if p.SystemRole == model.RoleAdmin {
		return permission == SystemManage || permission == UsersManage || permission == UsersView
	}

	if IsCommitteePosition(p.OrgPosition) {
		return permission != SystemManage && permission != UsersManage
	}

	if isApplicant(p) {
		switch permission {
		case MembersApply, MembersViewSelf, EventsViewPublic, AnnouncementsViewPublic:
			return true
		}
		return false
	}

	// Regular member. MembersApply is denied here: they already belong.
	switch permission {
	case MembersViewSelf, FinanceViewSelf, EventsViewPublic, AnnouncementsViewPublic:
		return true
	default:
		return false
	}
}

// CanAccessMemberRecord reports whether the profile may read the member
// record with the given ID.
func CanAccessMemberRecord(p Profile, targetMemberID string) bool {
	if CanAccess(p, MembersViewAll) {
		return true
	}
	return CanAccess(p, MembersViewSelf) && p.MemberID != "" && p.MemberID == targetMemberID
}
