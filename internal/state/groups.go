package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/permission"
	"github.com/nhle/check-me-out/internal/templates"
)

// CreateGroup appends a group ordered after the existing ones. On the free
// tier the group count is capped; exceeding it returns a
// *permission.LimitError without mutating.
func (s *Store) CreateGroup(name, icon string) (model.ChecklistGroup, error) {
	if err := validateName(name); err != nil {
		return model.ChecklistGroup{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.limits.CheckGroupQuota(len(s.state.Groups), s.state.Settings.UserPermission); err != nil {
		return model.ChecklistGroup{}, err
	}

	g := model.ChecklistGroup{
		ID:        s.newID(),
		Name:      name,
		Icon:      icon,
		Order:     len(s.state.Groups),
		CreatedAt: s.nowMillis(),
	}
	s.state.Groups = append(s.state.Groups, g)
	s.persistLocked(sliceGroups)

	s.log.Debug("group created", zap.String("id", g.ID))
	return g, nil
}

// DeleteGroup removes a group. Its checklists are kept and become
// ungrouped. If it was the active group, no group is active afterwards.
func (s *Store) DeleteGroup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.FindGroup(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	s.state.Groups = append(s.state.Groups[:i], s.state.Groups[i+1:]...)

	parts := sliceGroups
	orphaned := 0
	for j := range s.state.Checklists {
		c := &s.state.Checklists[j]
		if c.InGroup(id) {
			c.GroupID = nil
			s.touch(c)
			orphaned++
		}
	}
	if orphaned > 0 {
		parts |= sliceChecklists
	}
	if active := s.state.ActiveGroupID; active != nil && *active == id {
		s.state.ActiveGroupID = nil
		parts |= sliceActiveGroup
	}
	s.persistLocked(parts)

	s.log.Debug("group deleted", zap.String("id", id), zap.Int("orphaned", orphaned))
	return nil
}

// UpdateGroupName renames a group.
func (s *Store) UpdateGroupName(id, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.FindGroup(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	s.state.Groups[i].Name = name
	s.persistLocked(sliceGroups)
	return nil
}

// SetActiveGroup activates a group, or the ungrouped view when id is nil,
// and activates its first checklist.
func (s *Store) SetActiveGroup(id *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != nil && s.state.FindGroup(*id) < 0 {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, *id)
	}
	s.state.ActiveGroupID = nil
	if id != nil {
		s.state.ActiveGroupID = model.StringPtr(*id)
	}
	s.state.ActiveChecklistID = s.firstInActiveGroupLocked()
	s.persistLocked(sliceActiveGroup | sliceActiveChecklist)
	return nil
}

// ImportGroupTemplate creates a group and a pre-filled checklist from a
// built-in template and activates them. Requires the premium tier.
func (s *Store) ImportGroupTemplate(templateID string) (model.ChecklistGroup, model.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := permission.RequirePremium(s.state.Settings.UserPermission); err != nil {
		return model.ChecklistGroup{}, model.Checklist{}, err
	}
	tpl, err := templates.ByID(templateID)
	if err != nil {
		return model.ChecklistGroup{}, model.Checklist{}, err
	}
	if err := s.limits.CheckGroupQuota(len(s.state.Groups), s.state.Settings.UserPermission); err != nil {
		return model.ChecklistGroup{}, model.Checklist{}, err
	}

	g, c := templates.Convert(tpl, s.newID, s.nowMillis(), len(s.state.Groups))
	s.state.Groups = append(s.state.Groups, g)
	s.state.Checklists = append(s.state.Checklists, c)
	s.state.ActiveGroupID = model.StringPtr(g.ID)
	s.state.ActiveChecklistID = model.StringPtr(c.ID)
	s.persistLocked(sliceAll &^ sliceSettings)

	s.log.Info("template imported", zap.String("template", templateID), zap.String("group", g.ID))
	return g, c.Clone(), nil
}
