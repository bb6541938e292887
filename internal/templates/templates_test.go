package templates

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, tpl := range All() {
		require.False(t, seen[tpl.ID], "duplicate template id %q", tpl.ID)
		seen[tpl.ID] = true
		assert.NotEmpty(t, tpl.Items, "template %q has no items", tpl.ID)
	}
}

func TestByID(t *testing.T) {
	tpl, err := ByID("travel")
	require.NoError(t, err)
	assert.Equal(t, "Travel", tpl.Name)

	_, err = ByID("nope")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestConvert(t *testing.T) {
	tpl, err := ByID("movie")
	require.NoError(t, err)

	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	group, checklist := Convert(tpl, newID, 1000, 3)

	assert.Equal(t, "Movie", group.Name)
	assert.Equal(t, 3, group.Order)
	require.NotNil(t, checklist.GroupID)
	assert.Equal(t, group.ID, *checklist.GroupID)
	require.Len(t, checklist.Items, len(tpl.Items))
	for i, item := range checklist.Items {
		assert.Equal(t, i, item.Order)
		assert.False(t, item.Checked)
		assert.Equal(t, tpl.Items[i].Title, item.Title)
	}
	assert.Equal(t, int64(1000), checklist.UpdatedAt)
}
