package state

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/locale"
	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/store"
)

const defaultGroupIcon = "home"

// Initialize loads the persisted slices, migrates and heals them, applies
// the language, persists the healed state, arranges the reminder and runs
// the reset check once. Any failure falls back to a fresh default state.
// IsLoading turns false only when this has completed.
func (s *Store) Initialize(ctx context.Context) error {
	healed, err := s.load(ctx)
	if err != nil {
		s.log.Error("initialization failed, using defaults", zap.Error(err))
		healed = s.defaultState()
	}

	s.mu.Lock()
	s.state = healed
	s.state.IsLoading = true
	if err == nil {
		s.persistLocked(sliceAll)
		s.writer.EnqueueJSON(store.KeySchemaVersion, CurrentSchemaVersion)
	}
	notification := s.state.Settings.Notification
	s.mu.Unlock()

	if serr := s.scheduler.Schedule(ctx, notification); serr != nil {
		s.log.Error("scheduling reminder", zap.Error(serr))
	}

	if _, cerr := s.checker.Check(ctx); cerr != nil {
		s.log.Error("reset check", zap.Error(cerr))
	}

	s.mu.Lock()
	s.state.IsLoading = false
	s.mu.Unlock()

	s.log.Info("state initialized",
		zap.Int("checklists", len(healed.Checklists)),
		zap.Int("groups", len(healed.Groups)),
		zap.Bool("fallback", err != nil),
	)
	return nil
}

func (s *Store) load(ctx context.Context) (st model.AppState, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("initialization panic: %v", r)
		}
	}()

	var p persisted
	s.read(ctx, store.KeyChecklists, &p.Checklists)
	s.read(ctx, store.KeyGroups, &p.Groups)
	p.Settings = new(model.AppSettings)
	if !s.read(ctx, store.KeySettings, p.Settings) {
		p.Settings = nil
	}
	s.read(ctx, store.KeyActiveChecklist, &p.ActiveChecklistID)
	s.read(ctx, store.KeyActiveGroup, &p.ActiveGroupID)

	var version int
	hasVersion := s.read(ctx, store.KeySchemaVersion, &version)

	p, err = migrate(p, detectVersion(p, version, hasVersion))
	if err != nil {
		return model.AppState{}, err
	}
	return s.heal(p), nil
}

// read decodes key into v. Read failures are logged and treated as absent.
func (s *Store) read(ctx context.Context, key string, v any) bool {
	found, err := store.GetJSON(ctx, s.kv, key, v)
	if err != nil {
		s.log.Warn("reading slice", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

// heal turns migrated data into a state satisfying every invariant.
func (s *Store) heal(p persisted) model.AppState {
	st := model.AppState{
		Checklists: p.Checklists,
		Groups:     p.Groups,
	}
	if st.Groups == nil {
		st.Groups = []model.ChecklistGroup{}
	}
	if st.Checklists == nil {
		st.Checklists = []model.Checklist{}
	}

	if p.Settings != nil {
		st.Settings = s.normalizeSettings(*p.Settings)
	} else {
		st.Settings = s.defaultSettings()
	}
	s.applyLanguage(st.Settings.Language)

	// dangling group references become ungrouped
	for i := range st.Checklists {
		c := &st.Checklists[i]
		if c.GroupID != nil && st.FindGroup(*c.GroupID) < 0 {
			c.GroupID = nil
		}
		if c.Items == nil {
			c.Items = []model.ChecklistItem{}
		}
	}

	def, ok := st.GroupByName(model.DefaultGroupName)
	if !ok {
		def = s.newDefaultGroup(len(st.Groups))
		st.Groups = append(st.Groups, def)
	}

	inDefault := 0
	for i := range st.Checklists {
		c := &st.Checklists[i]
		if !c.InGroup(def.ID) {
			continue
		}
		inDefault++
		if len(c.Items) == 0 {
			c.Items = s.defaultItems()
			s.touch(c)
		}
	}
	if inDefault == 0 {
		st.Checklists = append(st.Checklists, s.newDefaultChecklist(def.ID))
	}

	// active group: stored, else default, else first
	switch {
	case p.ActiveGroupID != nil && st.FindGroup(*p.ActiveGroupID) >= 0:
		st.ActiveGroupID = model.StringPtr(*p.ActiveGroupID)
	case st.FindGroup(def.ID) >= 0:
		st.ActiveGroupID = model.StringPtr(def.ID)
	default:
		st.ActiveGroupID = model.StringPtr(st.Groups[0].ID)
	}

	// active checklist: stored if in the active group, else first there
	activeGroup := *st.ActiveGroupID
	if id := p.ActiveChecklistID; id != nil {
		if i := st.FindChecklist(*id); i >= 0 && st.Checklists[i].InGroup(activeGroup) {
			st.ActiveChecklistID = model.StringPtr(*id)
		}
	}
	if st.ActiveChecklistID == nil {
		if in := st.ChecklistsInGroup(activeGroup); len(in) > 0 {
			st.ActiveChecklistID = model.StringPtr(in[0].ID)
		} else {
			c := s.newChecklist(s.bundle.DefaultChecklistName(), model.StringPtr(activeGroup))
			st.Checklists = append(st.Checklists, c)
			st.ActiveChecklistID = model.StringPtr(c.ID)
		}
	}

	return st
}

// defaultState is the fresh state used on first run and on fallback.
func (s *Store) defaultState() model.AppState {
	def := s.newDefaultGroup(0)
	c := s.newDefaultChecklist(def.ID)
	return model.AppState{
		Checklists:        []model.Checklist{c},
		Groups:            []model.ChecklistGroup{def},
		ActiveChecklistID: model.StringPtr(c.ID),
		ActiveGroupID:     model.StringPtr(def.ID),
		Settings:          s.defaultSettings(),
	}
}

func (s *Store) defaultSettings() model.AppSettings {
	title, body := s.bundle.NotificationDefaults()
	return model.AppSettings{
		Notification: model.NotificationSettings{
			Enabled: true,
			Time:    "08:00",
			Title:   title,
			Body:    body,
		},
		UserPermission: model.PermissionFree,
		Theme:          model.ThemeLight,
		Language:       string(s.bundle.Current()),
		ClockFormat:    model.Clock24h,
	}
}

// normalizeSettings replaces fields that fail validation with defaults.
func (s *Store) normalizeSettings(in model.AppSettings) model.AppSettings {
	def := s.defaultSettings()
	out := in.Clone()

	if !out.UserPermission.IsValid() {
		out.UserPermission = def.UserPermission
	}
	if !out.Theme.IsValid() {
		out.Theme = def.Theme
	}
	if !out.ClockFormat.IsValid() {
		out.ClockFormat = def.ClockFormat
	}
	if _, _, err := model.ParseClock(out.Notification.Time); err != nil {
		out.Notification.Time = def.Notification.Time
	}
	if out.Notification.Title == "" {
		out.Notification.Title = def.Notification.Title
	}
	if out.Notification.Body == "" {
		out.Notification.Body = def.Notification.Body
	}
	if out.ResetTime != nil {
		if _, _, err := model.ParseClock(*out.ResetTime); err != nil {
			s.log.Warn("dropping invalid reset time", zap.String("reset_time", *out.ResetTime))
			out.ResetTime = nil
		}
	}
	if out.Language == "" {
		out.Language = def.Language
	} else if lang := locale.Language(out.Language); !lang.IsSupported() {
		out.Language = string(locale.Match(out.Language))
	}
	return out
}

// applyLanguage switches the bundle so synthesized data is localized.
func (s *Store) applyLanguage(language string) {
	if err := s.bundle.Use(locale.Language(language)); err != nil {
		s.log.Warn("unsupported language", zap.String("language", language), zap.Error(err))
	}
}

func (s *Store) newDefaultGroup(order int) model.ChecklistGroup {
	return model.ChecklistGroup{
		ID:        s.newID(),
		Name:      model.DefaultGroupName,
		Icon:      defaultGroupIcon,
		Order:     order,
		CreatedAt: s.nowMillis(),
	}
}

func (s *Store) newDefaultChecklist(groupID string) model.Checklist {
	c := s.newChecklist(s.bundle.DefaultChecklistName(), model.StringPtr(groupID))
	c.Items = s.defaultItems()
	return c
}

func (s *Store) newChecklist(name string, groupID *string) model.Checklist {
	now := s.nowMillis()
	return model.Checklist{
		ID:        s.newID(),
		Name:      name,
		Items:     []model.ChecklistItem{},
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Store) defaultItems() []model.ChecklistItem {
	now := s.nowMillis()
	seeds := s.bundle.DefaultItems()
	items := make([]model.ChecklistItem, len(seeds))
	for i, seed := range seeds {
		items[i] = model.ChecklistItem{
			ID:        s.newID(),
			Title:     seed.Title,
			Icon:      seed.Icon,
			Order:     i,
			CreatedAt: now,
		}
	}
	return items
}
