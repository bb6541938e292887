package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/store"
)

func TestInitializeFreshInstall(t *testing.T) {
	f := newFixture(t, nil)
	assert.True(t, f.store.IsLoading())

	require.NoError(t, f.store.Initialize(context.Background()))
	assert.False(t, f.store.IsLoading())

	st := f.store.Snapshot()
	require.Len(t, st.Groups, 1)
	assert.Equal(t, model.DefaultGroupName, st.Groups[0].Name)
	assert.Equal(t, "Default", f.store.GroupLabel(st.Groups[0]))

	require.Len(t, st.Checklists, 1)
	c := st.Checklists[0]
	assert.True(t, c.InGroup(st.Groups[0].ID))
	require.Len(t, c.Items, 4)
	for i, item := range c.Items {
		assert.False(t, item.Checked)
		assert.Equal(t, i, item.Order)
	}
	assert.Equal(t, "wallet", c.Items[0].Icon)

	require.NotNil(t, st.ActiveGroupID)
	require.NotNil(t, st.ActiveChecklistID)
	assert.Equal(t, st.Groups[0].ID, *st.ActiveGroupID)
	assert.Equal(t, c.ID, *st.ActiveChecklistID)

	assert.Equal(t, model.PermissionFree, st.Settings.UserPermission)
	assert.Equal(t, "en", st.Settings.Language)
	assert.Nil(t, st.Settings.ResetTime)

	n, calls := f.scheduler.last()
	assert.Equal(t, 1, calls)
	assert.True(t, n.Enabled)
	assert.Equal(t, "08:00", n.Time)
}

func TestInitializePersistsHealedState(t *testing.T) {
	ctx := context.Background()
	f := newInitialized(t)
	f.flush(t)

	var checklists []model.Checklist
	found, err := store.GetJSON(ctx, f.kv, store.KeyChecklists, &checklists)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, checklists, 1)

	var version int
	_, err = store.GetJSON(ctx, f.kv, store.KeySchemaVersion, &version)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)

	// a second store over the same data sees the same tree
	again := New(f.kv, Options{Writer: f.writer, NewID: sequentialIDs()})
	require.NoError(t, again.Initialize(ctx))
	assert.Equal(t, f.store.Snapshot().Checklists, again.Snapshot().Checklists)
}

func TestInitializeRepopulatesEmptyDefaultChecklist(t *testing.T) {
	f := newFixture(t, func(kv store.KV) {
		seedJSON(t, kv, store.KeySchemaVersion, CurrentSchemaVersion)
		seedJSON(t, kv, store.KeyGroups, []model.ChecklistGroup{{ID: "g1", Name: model.DefaultGroupName}})
		seedJSON(t, kv, store.KeyChecklists, []model.Checklist{
			{ID: "c1", Name: "Mine", Items: []model.ChecklistItem{}, GroupID: model.StringPtr("g1")},
		})
	})
	require.NoError(t, f.store.Initialize(context.Background()))

	st := f.store.Snapshot()
	require.Len(t, st.Checklists, 1)
	assert.Equal(t, "Mine", st.Checklists[0].Name)
	assert.Len(t, st.Checklists[0].Items, 4)
	assert.Equal(t, "c1", *st.ActiveChecklistID)
}

func TestInitializeMigratesLegacyChecklists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(kv store.KV) {
		// pre-group shape: no groupId, no groups slice, no version key
		require.NoError(t, kv.Set(ctx, store.KeyChecklists,
			[]byte(`[{"id":"old","name":"Legacy","items":[{"id":"i1","title":"Wallet","checked":true,"order":0,"createdAt":1}],"createdAt":1,"updatedAt":1}]`)))
		require.NoError(t, kv.Set(ctx, store.KeySettings,
			[]byte(`{"notification":{"enabled":false,"time":"07:15","title":"t","body":"b"},"userPermission":"premium","theme":"dark","language":"zh-CN"}`)))
		require.NoError(t, kv.Set(ctx, store.KeyActiveChecklist, []byte(`"old"`)))
	})
	require.NoError(t, f.store.Initialize(ctx))

	st := f.store.Snapshot()
	legacy := st.Checklists[st.FindChecklist("old")]
	assert.Nil(t, legacy.GroupID)
	assert.True(t, legacy.Items[0].Checked)

	def := f.defaultGroup(t)
	assert.Equal(t, def.ID, *st.ActiveGroupID)
	// the stored active checklist is not in the active group
	active := f.active(t)
	assert.NotEqual(t, "old", active.ID)
	assert.True(t, active.InGroup(def.ID))

	assert.Equal(t, model.Clock24h, st.Settings.ClockFormat)
	assert.Equal(t, model.PermissionPremium, st.Settings.UserPermission)
	assert.Equal(t, "zh-CN", st.Settings.Language)
	assert.Equal(t, "zh-CN", string(f.store.Bundle().Current()))
	assert.Equal(t, "07:15", st.Settings.Notification.Time)
}

func TestInitializeKeepsValidStoredPointers(t *testing.T) {
	f := newFixture(t, func(kv store.KV) {
		seedJSON(t, kv, store.KeySchemaVersion, CurrentSchemaVersion)
		seedJSON(t, kv, store.KeyGroups, []model.ChecklistGroup{
			{ID: "g1", Name: model.DefaultGroupName},
			{ID: "g2", Name: "Gym", Order: 1},
		})
		seedJSON(t, kv, store.KeyChecklists, []model.Checklist{
			{ID: "c1", Name: "Daily", Items: []model.ChecklistItem{{ID: "i1", Title: "Keys"}}, GroupID: model.StringPtr("g1")},
			{ID: "c2", Name: "Bag", Items: []model.ChecklistItem{}, GroupID: model.StringPtr("g2")},
			{ID: "c3", Name: "Shoes", Items: []model.ChecklistItem{}, GroupID: model.StringPtr("gone")},
		})
		seedJSON(t, kv, store.KeyActiveGroup, "g2")
		seedJSON(t, kv, store.KeyActiveChecklist, "c2")
	})
	require.NoError(t, f.store.Initialize(context.Background()))

	st := f.store.Snapshot()
	assert.Equal(t, "g2", *st.ActiveGroupID)
	assert.Equal(t, "c2", *st.ActiveChecklistID)
	// non-default empty checklists are left alone
	assert.Empty(t, st.Checklists[1].Items)
	// dangling group reference is cleared
	assert.Nil(t, st.Checklists[2].GroupID)
}

func TestInitializeFallsBackOnFutureSchema(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(kv store.KV) {
		seedJSON(t, kv, store.KeySchemaVersion, 99)
		require.NoError(t, kv.Set(ctx, store.KeyChecklists, []byte(`[{"id":"future"}]`)))
	})
	require.NoError(t, f.store.Initialize(ctx))
	assert.False(t, f.store.IsLoading())

	st := f.store.Snapshot()
	require.Len(t, st.Groups, 1)
	require.Len(t, st.Checklists, 1)
	assert.NotEqual(t, "future", st.Checklists[0].ID)

	f.flush(t)
	raw, err := f.kv.Get(ctx, store.KeyChecklists)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"future"}]`, string(raw))
}

func TestInitializeTreatsCorruptSliceAsAbsent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(kv store.KV) {
		require.NoError(t, kv.Set(ctx, store.KeyChecklists, []byte(`{not json`)))
	})
	require.NoError(t, f.store.Initialize(ctx))

	st := f.store.Snapshot()
	require.Len(t, st.Checklists, 1)
	assert.Len(t, st.Checklists[0].Items, 4)
}

func TestInitializeRunsResetCheck(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(kv store.KV) {
		seedJSON(t, kv, store.KeySchemaVersion, CurrentSchemaVersion)
		seedJSON(t, kv, store.KeyGroups, []model.ChecklistGroup{{ID: "g1", Name: model.DefaultGroupName}})
		seedJSON(t, kv, store.KeyChecklists, []model.Checklist{{
			ID:      "c1",
			Name:    "Daily",
			GroupID: model.StringPtr("g1"),
			Items:   []model.ChecklistItem{{ID: "i1", Title: "Keys", Checked: true}},
		}})
		seedJSON(t, kv, store.KeySettings, model.AppSettings{
			Notification:   model.NotificationSettings{Enabled: true, Time: "08:00", Title: "t", Body: "b"},
			UserPermission: model.PermissionFree,
			Theme:          model.ThemeLight,
			Language:       "en",
			ClockFormat:    model.Clock12h,
			ResetTime:      model.StringPtr("07:00"),
		})
		seedJSON(t, kv, store.KeyLastResetDate, "2024-03-14")
	})
	require.NoError(t, f.store.Initialize(ctx))

	c, err := f.store.Checklist("c1")
	require.NoError(t, err)
	assert.False(t, c.Items[0].Checked)

	last, err := f.store.Checker().LastResetDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", last)
}

func TestResetStorage(t *testing.T) {
	ctx := context.Background()
	f := newInitialized(t)

	_, err := f.store.AddItem(f.active(t).ID, "Umbrella", "")
	require.NoError(t, err)
	require.NoError(t, f.store.ResetStorage(ctx))

	st := f.store.Snapshot()
	require.Len(t, st.Checklists, 1)
	assert.Len(t, st.Checklists[0].Items, 4)
	assert.False(t, st.IsLoading)
}
