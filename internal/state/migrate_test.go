package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/check-me-out/internal/model"
)

func TestDetectVersion(t *testing.T) {
	assert.Equal(t, CurrentSchemaVersion, detectVersion(persisted{}, 0, false))
	assert.Equal(t, 1, detectVersion(persisted{Checklists: []model.Checklist{}}, 0, false))
	assert.Equal(t, 2, detectVersion(persisted{Groups: []model.ChecklistGroup{}}, 0, false))
	assert.Equal(t, 2, detectVersion(persisted{}, 2, true))
}

func TestMigrateFromV1(t *testing.T) {
	in := persisted{
		Checklists: []model.Checklist{{ID: "c1", GroupID: model.StringPtr("stale")}},
		Settings:   &model.AppSettings{Language: "en"},
	}

	out, err := migrate(in, 1)
	require.NoError(t, err)
	assert.NotNil(t, out.Groups)
	assert.Nil(t, out.Checklists[0].GroupID)
	assert.Equal(t, model.Clock24h, out.Settings.ClockFormat)
	assert.Nil(t, out.Settings.ResetTime)

	// inputs are not modified
	assert.Equal(t, "stale", *in.Checklists[0].GroupID)
	assert.Empty(t, in.Settings.ClockFormat)
}

func TestMigrateKeepsCurrentData(t *testing.T) {
	in := persisted{
		Groups:   []model.ChecklistGroup{{ID: "g1"}},
		Settings: &model.AppSettings{ClockFormat: model.Clock12h},
	}
	out, err := migrate(in, CurrentSchemaVersion)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = migrate(in, 2)
	require.NoError(t, err)
	assert.Equal(t, model.Clock12h, out.Settings.ClockFormat)
}

func TestMigrateRejectsFutureSchema(t *testing.T) {
	_, err := migrate(persisted{}, CurrentSchemaVersion+1)
	assert.ErrorIs(t, err, ErrFutureSchema)
}
