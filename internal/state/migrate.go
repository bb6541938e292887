package state

import (
	"errors"
	"fmt"

	"github.com/nhle/check-me-out/internal/model"
)

// CurrentSchemaVersion is the shape written by this build.
//
//	1: checklists without groups
//	2: groups slice and checklist groupId
//	3: clockFormat and resetTime settings
const CurrentSchemaVersion = 3

var ErrFutureSchema = errors.New("state: stored schema is newer than supported")

// persisted is the raw content of the storage slices. Nil fields were absent.
type persisted struct {
	Checklists        []model.Checklist
	Groups            []model.ChecklistGroup
	Settings          *model.AppSettings
	ActiveChecklistID *string
	ActiveGroupID     *string
}

// migration upgrades data from version i+1 to i+2, where i is its index.
type migration func(persisted) persisted

var migrations = []migration{
	migrateV1ToV2,
	migrateV2ToV3,
}

// detectVersion infers the schema of data written before the version key
// existed. Fresh installs are current.
func detectVersion(p persisted, stored int, hasStored bool) int {
	if hasStored {
		return stored
	}
	switch {
	case p.Groups != nil:
		return 2
	case p.Checklists != nil:
		return 1
	default:
		return CurrentSchemaVersion
	}
}

// migrate applies the migrations from version up to CurrentSchemaVersion.
func migrate(p persisted, version int) (persisted, error) {
	if version > CurrentSchemaVersion {
		return p, fmt.Errorf("%w: %d", ErrFutureSchema, version)
	}
	if version < 1 {
		version = 1
	}
	for v := version; v < CurrentSchemaVersion; v++ {
		p = migrations[v-1](p)
	}
	return p, nil
}

// migrateV1ToV2 introduces groups. Legacy checklists stay ungrouped.
func migrateV1ToV2(p persisted) persisted {
	if p.Groups == nil {
		p.Groups = []model.ChecklistGroup{}
	}
	checklists := make([]model.Checklist, len(p.Checklists))
	for i, c := range p.Checklists {
		c = c.Clone()
		c.GroupID = nil
		checklists[i] = c
	}
	if p.Checklists != nil {
		p.Checklists = checklists
	}
	p.ActiveGroupID = nil
	return p
}

// migrateV2ToV3 fills the clock format and leaves the daily reset off.
func migrateV2ToV3(p persisted) persisted {
	if p.Settings == nil {
		return p
	}
	settings := p.Settings.Clone()
	if settings.ClockFormat == "" {
		settings.ClockFormat = model.Clock24h
	}
	p.Settings = &settings
	return p
}
