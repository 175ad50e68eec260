package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orghub/internal/model"
)

var allPermissions = []Permission{
	SystemManage, UsersManage, UsersView,
	MembersViewAll, MembersManage, MembersViewSelf, MembersApply,
	FinanceViewAll, FinanceManage, FinanceViewSelf,
	ReportsViewAll,
	EventsManage, EventsViewPublic,
	AnnouncementsManage, AnnouncementsViewPublic,
}

func TestCanAccess(t *testing.T) {
	admin := Profile{SystemRole: model.RoleAdmin}
	treasurer := Profile{SystemRole: model.RoleOrgUser, OrgPosition: model.PositionTreasurer}
	member := Profile{SystemRole: model.RoleOrgUser, OrgPosition: model.PositionMember, MemberStatus: model.StatusActive}
	applicant := Profile{SystemRole: model.RoleOrgUser, OrgPosition: model.PositionApplicant}

	tests := []struct {
		name       string
		profile    Profile
		permission Permission
		want       bool
	}{
		{"admin manages users", admin, UsersManage, true},
		{"admin manages the system", admin, SystemManage, true},
		{"admin views users", admin, UsersView, true},
		{"admin cannot manage finance", admin, FinanceManage, false},
		{"admin cannot view members", admin, MembersViewAll, false},

		{"treasurer manages finance", treasurer, FinanceManage, true},
		{"treasurer views all members", treasurer, MembersViewAll, true},
		{"treasurer views users", treasurer, UsersView, true},
		{"treasurer cannot manage users", treasurer, UsersManage, false},
		{"treasurer cannot manage the system", treasurer, SystemManage, false},

		{"member views own record", member, MembersViewSelf, true},
		{"member views own finance", member, FinanceViewSelf, true},
		{"member views public events", member, EventsViewPublic, true},
		{"member cannot apply again", member, MembersApply, false},
		{"member cannot view all finance", member, FinanceViewAll, false},

		{"applicant can apply", applicant, MembersApply, true},
		{"applicant views own record", applicant, MembersViewSelf, true},
		{"applicant cannot view own finance", applicant, FinanceViewSelf, false},
		{"applicant cannot manage events", applicant, EventsManage, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.profile, tt.permission))
		})
	}
}

func TestCanAccess_CommitteePositions(t *testing.T) {
	positions := []model.OrgPosition{
		model.PositionPatron, model.PositionChairperson, model.PositionSecretary,
		model.PositionTreasurer, model.PositionAuditor, model.PositionCommitteeMember,
	}
	for _, position := range positions {
		p := Profile{SystemRole: model.RoleOrgUser, OrgPosition: position}
		for _, permission := range allPermissions {
			want := permission != SystemManage && permission != UsersManage
			assert.Equal(t, want, CanAccess(p, permission),
				"position %s permission %s", position, permission)
		}
	}
}

func TestCanAccess_ApplicantByStatus(t *testing.T) {
	// An applicant status makes the profile an applicant even when the
	// position field says member.
	p := Profile{
		SystemRole:   model.RoleOrgUser,
		OrgPosition:  model.PositionMember,
		MemberStatus: model.StatusApplicant,
	}
	assert.True(t, CanAccess(p, MembersApply))
	assert.False(t, CanAccess(p, FinanceViewSelf))
}

func TestCanAccess_UnknownPermissionDenied(t *testing.T) {
	profiles := []Profile{
		{SystemRole: model.RoleAdmin},
		{SystemRole: model.RoleOrgUser, OrgPosition: model.PositionMember},
		{SystemRole: model.RoleOrgUser, OrgPosition: model.PositionApplicant},
	}
	for _, p := range profiles {
		assert.False(t, CanAccess(p, Permission("made.up")))
	}
}

func TestCanAccessMemberRecord(t *testing.T) {
	m1 := Profile{
		SystemRole:   model.RoleOrgUser,
		OrgPosition:  model.PositionMember,
		MemberStatus: model.StatusActive,
		MemberID:     "M1",
	}
	chair := Profile{SystemRole: model.RoleOrgUser, OrgPosition: model.PositionChairperson}
	unlinked := Profile{SystemRole: model.RoleOrgUser, OrgPosition: model.PositionMember}

	assert.True(t, CanAccessMemberRecord(m1, "M1"))
	assert.False(t, CanAccessMemberRecord(m1, "M2"))
	assert.True(t, CanAccessMemberRecord(chair, "M2"))
	assert.False(t, CanAccessMemberRecord(unlinked, "M1"))
}
