package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orghub/internal/common"
	"orghub/internal/model"
)

func TestStore_DeleteEventCascadesAttendance(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	meeting, err := store.CreateEvent(ctx, model.OrgEvent{Title: "Monthly Meeting", Date: "05/04/2025"})
	require.NoError(t, err)
	fundraiser, err := store.CreateEvent(ctx, model.OrgEvent{Title: "Fundraiser", Date: "12/04/2025"})
	require.NoError(t, err)

	_, err = store.UpsertAttendance(ctx, meeting.ID, "M1", true)
	require.NoError(t, err)
	_, err = store.UpsertAttendance(ctx, meeting.ID, "M2", false)
	require.NoError(t, err)
	_, err = store.UpsertAttendance(ctx, fundraiser.ID, "M1", true)
	require.NoError(t, err)

	require.NoError(t, store.DeleteEvent(ctx, meeting.ID))

	records, err := store.ListAttendance(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, fundraiser.ID, records[0].EventID)

	events, err := store.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fundraiser.ID, events[0].ID)
}

func TestStore_UpsertAttendance(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	_, err := store.UpsertAttendance(ctx, "E1", "M1", true)
	require.NoError(t, err)

	// Same pair again flips the flag without adding a record.
	record, err := store.UpsertAttendance(ctx, "E1", "M1", false)
	require.NoError(t, err)
	assert.False(t, record.Present)

	records, err := store.ListAttendance(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Present)

	// A different member at the same event is a new record.
	_, err = store.UpsertAttendance(ctx, "E1", "M2", true)
	require.NoError(t, err)
	records, err = store.ListAttendance(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStore_DeleteMemberLeavesReferences(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	member, err := store.CreateMember(ctx, model.Member{Name: "Borrower"})
	require.NoError(t, err)

	group, err := store.CreateGroup(ctx, model.Group{Name: "Welfare Team", MemberIDs: []string{member.ID}})
	require.NoError(t, err)

	txn := testTransaction(500)
	txn.MemberID = member.ID
	created, err := store.CreateTransaction(ctx, txn)
	require.NoError(t, err)

	require.NoError(t, store.DeleteMember(ctx, member.ID))

	// The group and transaction keep their dangling member IDs.
	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, group.ID, groups[0].ID)
	assert.Contains(t, groups[0].MemberIDs, member.ID)

	txns, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, created.ID, txns[0].ID)
	assert.Equal(t, member.ID, txns[0].MemberID)
}

func TestStore_UpdateEventNotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	_, err := store.UpdateEvent(ctx, model.OrgEvent{ID: "missing", Title: "Ghost", Date: "01/01/2025"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}
