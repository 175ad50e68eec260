package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orghub/internal/common"
	"orghub/internal/model"
)

// Helper function to create a test store.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err, "failed to open store")

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_MemberCRUD(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	t.Run("list empty collection", func(t *testing.T) {
		members, err := store.ListMembers(ctx)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("create stamps identity and defaults", func(t *testing.T) {
		created, err := store.CreateMember(ctx, model.Member{Name: "Aye Chan"})
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, model.StatusActive, created.Status)
		assert.Equal(t, model.PositionMember, created.Position)
		assert.NotEmpty(t, created.JoinDate)
		assert.Contains(t, avatarColors, created.AvatarColor)

		members, err := store.ListMembers(ctx)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, created.ID, members[0].ID)
	})

	t.Run("create rejects missing name", func(t *testing.T) {
		_, err := store.CreateMember(ctx, model.Member{})
		assert.ErrorIs(t, err, ErrInvalidMember)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		created, err := store.CreateMember(ctx, model.Member{Name: "Moe Moe"})
		require.NoError(t, err)

		created.Name = "Moe Moe Aung"
		created.Position = model.PositionTreasurer
		updated, err := store.UpdateMember(ctx, created)
		require.NoError(t, err)
		assert.Equal(t, "Moe Moe Aung", updated.Name)
		assert.Equal(t, model.PositionTreasurer, updated.Position)

		members, err := store.ListMembers(ctx)
		require.NoError(t, err)
		for _, m := range members {
			if m.ID == created.ID {
				assert.Equal(t, "Moe Moe Aung", m.Name)
			}
		}
	})

	t.Run("update unknown ID is NotFound", func(t *testing.T) {
		_, err := store.UpdateMember(ctx, model.Member{ID: "missing", Name: "Ghost"})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("delete removes record", func(t *testing.T) {
		created, err := store.CreateMember(ctx, model.Member{Name: "Temporary"})
		require.NoError(t, err)

		require.NoError(t, store.DeleteMember(ctx, created.ID))

		members, err := store.ListMembers(ctx)
		require.NoError(t, err)
		for _, m := range members {
			assert.NotEqual(t, created.ID, m.ID)
		}
	})

	t.Run("delete unknown ID is NotFound", func(t *testing.T) {
		err := store.DeleteMember(ctx, "missing")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestStore_CorruptCollection(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	require.NoError(t, store.writeRaw(ctx, KeyMembers, "{not json"))

	_, err := store.ListMembers(ctx)
	assert.ErrorIs(t, err, common.ErrCorruptState)
}

func TestStore_SettingsSingleton(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	t.Run("defaults before first save", func(t *testing.T) {
		settings, err := store.GetAccountSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "MMK", settings.Currency)
		assert.True(t, settings.OpeningBalanceCash.IsZero())
		assert.True(t, settings.OpeningBalanceBank.IsZero())
	})

	t.Run("save and reload", func(t *testing.T) {
		settings := model.DefaultAccountSettings()
		settings.OrgName = "Village Welfare"
		settings.OpeningBalanceCash = settings.OpeningBalanceCash.Add(decimalFromInt(50000))
		require.NoError(t, store.SaveAccountSettings(ctx, settings))

		loaded, err := store.GetAccountSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Village Welfare", loaded.OrgName)
		assert.Equal(t, "50000", loaded.OpeningBalanceCash.String())
	})

	t.Run("rejects negative opening balance", func(t *testing.T) {
		settings := model.DefaultAccountSettings()
		settings.OpeningBalanceBank = decimalFromInt(-1)
		assert.ErrorIs(t, store.SaveAccountSettings(ctx, settings), ErrInvalidSettings)
	})
}

func TestStore_SeedsDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, model.RoleAdmin, users[0].SystemRole)
	assert.True(t, users[0].IsActive)

	// A second read must not seed again.
	again, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}
