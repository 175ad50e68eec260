package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orghub/internal/access"
	"orghub/internal/common"
	"orghub/internal/model"
	"orghub/internal/provider"
	"orghub/internal/storage"
)

func createTestManager(t *testing.T) (*Manager, *provider.Provider) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	data := provider.New(store)
	require.NoError(t, data.Refresh(context.Background()))
	return New(store, data), data
}

func addUser(t *testing.T, data *provider.Provider, u model.UserAccount) model.UserAccount {
	t.Helper()
	created, err := data.AddUser(context.Background(), u)
	require.NoError(t, err)
	return created
}

func TestManager_SignInAndOut(t *testing.T) {
	ctx := context.Background()
	m, data := createTestManager(t)

	user := addUser(t, data, model.UserAccount{
		DisplayName: "Treasurer",
		SystemRole:  model.RoleOrgUser,
		Position:    model.PositionTreasurer,
		IsActive:    true,
	})

	signedIn, err := m.SignIn(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, signedIn.ID)

	current, ok, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, m.SignOut(ctx))
	_, ok, err = m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_SignInErrors(t *testing.T) {
	ctx := context.Background()
	m, data := createTestManager(t)

	_, err := m.SignIn(ctx, "nobody")
	assert.ErrorIs(t, err, common.ErrUnknownUser)

	inactive := addUser(t, data, model.UserAccount{
		DisplayName: "Retired",
		SystemRole:  model.RoleOrgUser,
		IsActive:    false,
	})
	_, err = m.SignIn(ctx, inactive.ID)
	assert.ErrorIs(t, err, common.ErrInactiveUser)
}

func TestManager_StaleSessionCleared(t *testing.T) {
	ctx := context.Background()
	m, data := createTestManager(t)

	user := addUser(t, data, model.UserAccount{
		DisplayName: "Ephemeral",
		SystemRole:  model.RoleOrgUser,
		IsActive:    true,
	})
	_, err := m.SignIn(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, data.RemoveUser(ctx, user.ID))

	_, ok, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.CurrentProfile(ctx)
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestManager_CurrentProfileNoSession(t *testing.T) {
	m, _ := createTestManager(t)
	_, err := m.CurrentProfile(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestManager_ProfileFor(t *testing.T) {
	ctx := context.Background()
	m, data := createTestManager(t)

	applicantMember, err := data.AddMember(ctx, model.Member{
		Name:   "Hopeful",
		Status: model.StatusApplicant,
	})
	require.NoError(t, err)
	chairMember, err := data.AddMember(ctx, model.Member{
		Name:     "Chair",
		Position: model.PositionChairperson,
	})
	require.NoError(t, err)

	t.Run("admin ignores linked member", func(t *testing.T) {
		profile := m.ProfileFor(model.UserAccount{
			SystemRole: model.RoleAdmin,
			MemberID:   chairMember.ID,
		})
		assert.Equal(t, model.RoleAdmin, profile.SystemRole)
		assert.Empty(t, profile.OrgPosition)
		assert.True(t, access.CanAccess(profile, access.UsersManage))
		assert.False(t, access.CanAccess(profile, access.FinanceManage))
	})

	t.Run("position from linked member", func(t *testing.T) {
		profile := m.ProfileFor(model.UserAccount{
			SystemRole: model.RoleOrgUser,
			MemberID:   chairMember.ID,
		})
		assert.Equal(t, model.PositionChairperson, profile.OrgPosition)
		assert.True(t, access.CanAccess(profile, access.FinanceManage))
	})

	t.Run("account position overrides member position", func(t *testing.T) {
		profile := m.ProfileFor(model.UserAccount{
			SystemRole: model.RoleOrgUser,
			MemberID:   chairMember.ID,
			Position:   model.PositionAuditor,
		})
		assert.Equal(t, model.PositionAuditor, profile.OrgPosition)
	})

	t.Run("applicant inferred from member status", func(t *testing.T) {
		profile := m.ProfileFor(model.UserAccount{
			SystemRole: model.RoleOrgUser,
			MemberID:   applicantMember.ID,
		})
		assert.Equal(t, model.PositionApplicant, profile.OrgPosition)
		assert.Equal(t, model.StatusApplicant, profile.MemberStatus)
		assert.True(t, access.CanAccess(profile, access.MembersApply))
	})

	t.Run("unlinked org user is a plain member", func(t *testing.T) {
		profile := m.ProfileFor(model.UserAccount{
			SystemRole: model.RoleOrgUser,
		})
		assert.Equal(t, model.PositionMember, profile.OrgPosition)
		assert.Equal(t, model.StatusActive, profile.MemberStatus)
	})
}
