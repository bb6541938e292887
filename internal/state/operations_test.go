package state

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/permission"
	"github.com/nhle/check-me-out/internal/store"
	"github.com/nhle/check-me-out/internal/templates"
)

func TestAddItemAppendsWithNextOrder(t *testing.T) {
	f := newInitialized(t)
	c := f.active(t)

	// trim to two existing items
	require.NoError(t, f.store.DeleteItem(c.ID, c.Items[3].ID))
	require.NoError(t, f.store.DeleteItem(c.ID, c.Items[2].ID))

	item, err := f.store.AddItem(c.ID, "Wallet", "wallet")
	require.NoError(t, err)
	assert.Equal(t, 2, item.Order)
	assert.False(t, item.Checked)
	assert.Equal(t, "wallet", item.Icon)

	def, err := f.store.AddItem(c.ID, "Umbrella", "")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultItemIcon, def.Icon)
	assert.Equal(t, 3, def.Order)
}

func TestToggleItemCheckTwice(t *testing.T) {
	f := newInitialized(t)
	c := f.active(t)
	item := c.Items[0]
	before := c.UpdatedAt

	checked, err := f.store.ToggleItemCheck(c.ID, item.ID)
	require.NoError(t, err)
	assert.True(t, checked)
	first := f.active(t).UpdatedAt
	assert.Greater(t, first, before)

	checked, err = f.store.ToggleItemCheck(c.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Checked, checked)
	second := f.active(t).UpdatedAt
	assert.Greater(t, second, first)
}

func TestUpdatedAtFollowsClock(t *testing.T) {
	f := newInitialized(t)
	c := f.active(t)

	f.now = f.now.Add(time.Hour)
	require.NoError(t, f.store.UpdateItem(c.ID, c.Items[0].ID, "Purse"))

	got := f.active(t)
	assert.Equal(t, model.Millis(f.now), got.UpdatedAt)
	assert.Equal(t, "Purse", got.Items[0].Title)
}

func TestItemOperationErrors(t *testing.T) {
	f := newInitialized(t)
	c := f.active(t)

	_, err := f.store.AddItem("missing", "x", "")
	assert.ErrorIs(t, err, ErrChecklistNotFound)

	_, err = f.store.AddItem(c.ID, "   ", "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = f.store.ToggleItemCheck(c.ID, "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.ErrorIs(t, f.store.UpdateItem(c.ID, c.Items[0].ID, ""), ErrEmptyName)
	assert.ErrorIs(t, f.store.DeleteItem(c.ID, "missing"), ErrItemNotFound)

	// failed operations leave the checklist untouched
	assert.Equal(t, c, f.active(t))
}

func TestReorderItemsPreservesSet(t *testing.T) {
	f := newInitialized(t)
	c := f.active(t)
	for _, title := range []string{"Umbrella", "Glasses", "Charger"} {
		_, err := f.store.AddItem(c.ID, title, "")
		require.NoError(t, err)
	}
	c = f.active(t)

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		ids := make([]string, len(c.Items))
		for i, item := range c.Items {
			ids[i] = item.ID
		}
		rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

		require.NoError(t, f.store.ReorderItems(c.ID, ids))
		got := f.active(t)
		require.Len(t, got.Items, len(ids))

		byID := make(map[string]model.ChecklistItem)
		for _, item := range c.Items {
			byID[item.ID] = item
		}
		for i, item := range got.Items {
			assert.Equal(t, ids[i], item.ID)
			assert.Equal(t, i, item.Order)
			want := byID[item.ID]
			want.Order = i
			assert.Equal(t, want, item)
		}
		c = got
	}
}

func TestReorderItemsRejectsMismatch(t *testing.T) {
	f := newInitialized(t)
	c := f.active(t)

	ids := []string{c.Items[0].ID, c.Items[0].ID, c.Items[1].ID, c.Items[2].ID}
	assert.ErrorIs(t, f.store.ReorderItems(c.ID, ids), ErrInvalidOrder)
	assert.ErrorIs(t, f.store.ReorderItems(c.ID, ids[:2]), ErrInvalidOrder)
	assert.Equal(t, c, f.active(t))
}

func TestResetAllItemsUnchecksOnly(t *testing.T) {
	f := newInitialized(t)
	c := f.active(t)
	for _, item := range c.Items[:2] {
		_, err := f.store.ToggleItemCheck(c.ID, item.ID)
		require.NoError(t, err)
	}

	require.NoError(t, f.store.ResetAllItems(c.ID))
	got := f.active(t)
	require.Len(t, got.Items, 4)
	for _, item := range got.Items {
		assert.False(t, item.Checked)
	}
}

func TestResetAllChecklists(t *testing.T) {
	f := newInitialized(t)
	require.NoError(t, f.store.UpdateUserPermission(model.PermissionPremium))

	a := f.active(t)
	b, err := f.store.CreateChecklist("Second", a.GroupID)
	require.NoError(t, err)
	item, err := f.store.AddItem(b.ID, "Badge", "")
	require.NoError(t, err)
	_, err = f.store.ToggleItemCheck(b.ID, item.ID)
	require.NoError(t, err)
	_, err = f.store.ToggleItemCheck(a.ID, a.Items[0].ID)
	require.NoError(t, err)

	f.store.ResetAllChecklists()
	for _, c := range f.store.Snapshot().Checklists {
		assert.NotEmpty(t, c.Items)
		for _, it := range c.Items {
			assert.False(t, it.Checked)
		}
	}
}

func TestResetAllItemsInGroupClearsItems(t *testing.T) {
	f := newInitialized(t)
	require.NoError(t, f.store.UpdateUserPermission(model.PermissionPremium))

	def := f.defaultGroup(t)
	first := f.active(t)
	second, err := f.store.CreateChecklist("Weekend", model.StringPtr(def.ID))
	require.NoError(t, err)
	_, err = f.store.AddItem(second.ID, "Sunglasses", "")
	require.NoError(t, err)

	other, err := f.store.CreateGroup("Gym", "dumbbell")
	require.NoError(t, err)
	outside, err := f.store.CreateChecklist("Gym bag", model.StringPtr(other.ID))
	require.NoError(t, err)
	_, err = f.store.AddItem(outside.ID, "Towel", "towel")
	require.NoError(t, err)
	outsideBefore, err := f.store.Checklist(outside.ID)
	require.NoError(t, err)

	require.NoError(t, f.store.ResetAllItemsInGroup(def.ID))

	for _, id := range []string{first.ID, second.ID} {
		c, err := f.store.Checklist(id)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
		assert.NotNil(t, c.Items)
	}
	outsideAfter, err := f.store.Checklist(outside.ID)
	require.NoError(t, err)
	assert.Equal(t, outsideBefore, outsideAfter)

	assert.ErrorIs(t, f.store.ResetAllItemsInGroup("missing"), ErrGroupNotFound)
}

func TestDeleteGroupOrphansChecklists(t *testing.T) {
	f := newInitialized(t)
	require.NoError(t, f.store.UpdateUserPermission(model.PermissionPremium))

	g, err := f.store.CreateGroup("Travel", "airplane")
	require.NoError(t, err)
	var ids []string
	for _, name := range []string{"Flight", "Hotel", "Car"} {
		c, err := f.store.CreateChecklist(name, model.StringPtr(g.ID))
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	require.NoError(t, f.store.SetActiveGroup(model.StringPtr(g.ID)))
	total := len(f.store.Snapshot().Checklists)

	require.NoError(t, f.store.DeleteGroup(g.ID))

	st := f.store.Snapshot()
	assert.Len(t, st.Checklists, total)
	assert.Equal(t, -1, st.FindGroup(g.ID))
	for _, id := range ids {
		i := st.FindChecklist(id)
		require.GreaterOrEqual(t, i, 0)
		assert.Nil(t, st.Checklists[i].GroupID)
	}
	assert.Nil(t, st.ActiveGroupID)

	assert.ErrorIs(t, f.store.DeleteGroup(g.ID), ErrGroupNotFound)
}

func TestCreateGroupQuota(t *testing.T) {
	f := newInitialized(t)

	g, err := f.store.CreateGroup("Gym", "")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Order)

	before := f.store.Snapshot()
	_, err = f.store.CreateGroup("Travel", "")
	require.ErrorIs(t, err, permission.ErrLimitReached)
	var limitErr *permission.LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, permission.ResourceGroup, limitErr.Resource)
	assert.Equal(t, 2, limitErr.Limit)
	assert.Equal(t, before, f.store.Snapshot())

	require.NoError(t, f.store.UpdateUserPermission(model.PermissionPremium))
	g, err = f.store.CreateGroup("Travel", "")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Order)
}

func TestCreateChecklistQuotaPerGroup(t *testing.T) {
	f := newInitialized(t)
	def := f.defaultGroup(t)

	_, err := f.store.CreateChecklist("Another", model.StringPtr(def.ID))
	require.ErrorIs(t, err, permission.ErrLimitReached)

	g, err := f.store.CreateGroup("Gym", "")
	require.NoError(t, err)
	c, err := f.store.CreateChecklist("Gym bag", model.StringPtr(g.ID))
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	st := f.store.Snapshot()
	assert.Equal(t, c.ID, *st.ActiveChecklistID)
	assert.Equal(t, g.ID, *st.ActiveGroupID)

	_, err = f.store.CreateChecklist("", model.StringPtr(g.ID))
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = f.store.CreateChecklist("x", model.StringPtr("missing"))
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestDeleteChecklistFallsBackWithinGroup(t *testing.T) {
	f := newInitialized(t)
	require.NoError(t, f.store.UpdateUserPermission(model.PermissionPremium))

	first := f.active(t)
	second, err := f.store.CreateChecklist("Second", first.GroupID)
	require.NoError(t, err)

	require.NoError(t, f.store.DeleteChecklist(second.ID))
	assert.Equal(t, first.ID, f.active(t).ID)

	require.NoError(t, f.store.DeleteChecklist(first.ID))
	assert.Nil(t, f.store.Snapshot().ActiveChecklistID)

	assert.ErrorIs(t, f.store.DeleteChecklist(first.ID), ErrChecklistNotFound)
}

func TestSetActiveChecklistFollowsGroup(t *testing.T) {
	f := newInitialized(t)
	def := f.defaultGroup(t)
	first := f.active(t)

	g, err := f.store.CreateGroup("Gym", "")
	require.NoError(t, err)
	_, err = f.store.CreateChecklist("Gym bag", model.StringPtr(g.ID))
	require.NoError(t, err)

	require.NoError(t, f.store.SetActiveChecklist(first.ID))
	st := f.store.Snapshot()
	assert.Equal(t, def.ID, *st.ActiveGroupID)

	require.NoError(t, f.store.SetActiveGroup(model.StringPtr(g.ID)))
	assert.True(t, f.active(t).InGroup(g.ID))

	require.NoError(t, f.store.UpdateChecklistName(first.ID, "Workday"))
	renamed, err := f.store.Checklist(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Workday", renamed.Name)

	require.NoError(t, f.store.UpdateGroupName(g.ID, "Fitness"))
	assert.ErrorIs(t, f.store.UpdateGroupName(g.ID, " "), ErrEmptyName)
	assert.ErrorIs(t, f.store.SetActiveChecklist("missing"), ErrChecklistNotFound)
	assert.ErrorIs(t, f.store.SetActiveGroup(model.StringPtr("missing")), ErrGroupNotFound)
}

func TestImportGroupTemplate(t *testing.T) {
	f := newInitialized(t)
	before := f.store.Snapshot()

	_, _, err := f.store.ImportGroupTemplate("travel")
	require.ErrorIs(t, err, permission.ErrPremiumRequired)
	assert.Equal(t, before, f.store.Snapshot())

	require.NoError(t, f.store.UpdateUserPermission(model.PermissionPremium))
	_, _, err = f.store.ImportGroupTemplate("nope")
	require.ErrorIs(t, err, templates.ErrTemplateNotFound)

	g, c, err := f.store.ImportGroupTemplate("travel")
	require.NoError(t, err)
	tpl, err := templates.ByID("travel")
	require.NoError(t, err)

	st := f.store.Snapshot()
	assert.Len(t, st.Groups, 2)
	assert.Equal(t, g.ID, *st.ActiveGroupID)
	assert.Equal(t, c.ID, *st.ActiveChecklistID)
	assert.Len(t, c.Items, len(tpl.Items))
	assert.Equal(t, 1, g.Order)
}

func TestSettingsUpdates(t *testing.T) {
	ctx := context.Background()
	f := newInitialized(t)

	require.NoError(t, f.store.UpdateNotificationSettings(ctx, false, ""))
	n, calls := f.scheduler.last()
	assert.Equal(t, 2, calls)
	assert.False(t, n.Enabled)
	assert.Equal(t, "08:00", n.Time)

	require.NoError(t, f.store.UpdateNotificationSettings(ctx, true, "21:45"))
	n, _ = f.scheduler.last()
	assert.True(t, n.Enabled)
	assert.Equal(t, "21:45", n.Time)

	assert.ErrorIs(t, f.store.UpdateNotificationSettings(ctx, true, "24:00"), model.ErrInvalidClock)
	assert.ErrorIs(t, f.store.UpdateResetTime(model.StringPtr("7")), model.ErrInvalidClock)
	assert.ErrorIs(t, f.store.UpdateClockFormat("13h"), model.ErrInvalidClockFormat)
	assert.ErrorIs(t, f.store.UpdateUserPermission("gold"), model.ErrInvalidPermission)
	assert.Error(t, f.store.UpdateLanguage("fr"))

	require.NoError(t, f.store.UpdateResetTime(model.StringPtr("06:30")))
	require.NoError(t, f.store.UpdateClockFormat(model.Clock12h))
	require.NoError(t, f.store.UpdateLanguage("zh-TW"))
	require.NoError(t, f.store.UpdateTheme(model.ThemeDark))

	s := f.store.Settings()
	assert.Equal(t, "06:30", *s.ResetTime)
	assert.Equal(t, model.Clock12h, s.ClockFormat)
	assert.Equal(t, "zh-TW", s.Language)
	assert.Equal(t, model.ThemeDark, s.Theme)

	require.NoError(t, f.store.UpdateResetTime(nil))
	assert.Nil(t, f.store.ResetTime())

	f.flush(t)
	var stored model.AppSettings
	_, err := store.GetJSON(ctx, f.kv, store.KeySettings, &stored)
	require.NoError(t, err)
	assert.Equal(t, f.store.Settings(), stored)
}

func TestSaveToStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newInitialized(t)

	c := f.active(t)
	_, err := f.store.ToggleItemCheck(c.ID, c.Items[1].ID)
	require.NoError(t, err)
	require.NoError(t, f.store.SaveToStorage(ctx))

	var checklists []model.Checklist
	_, err = store.GetJSON(ctx, f.kv, store.KeyChecklists, &checklists)
	require.NoError(t, err)
	assert.Equal(t, f.store.Snapshot().Checklists, checklists)

	var active *string
	_, err = store.GetJSON(ctx, f.kv, store.KeyActiveChecklist, &active)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, c.ID, *active)
}
