package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/check-me-out/internal/model"
)

// CreateChecklist appends an empty checklist to groupID (nil for ungrouped)
// and makes it active. The free tier allows a fixed number of checklists per
// group; exceeding it returns a *permission.LimitError without mutating.
func (s *Store) CreateChecklist(name string, groupID *string) (model.Checklist, error) {
	if err := validateName(name); err != nil {
		return model.Checklist{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if groupID != nil && s.state.FindGroup(*groupID) < 0 {
		return model.Checklist{}, fmt.Errorf("%w: %s", ErrGroupNotFound, *groupID)
	}
	if err := s.limits.CheckChecklistQuota(s.countInGroupLocked(groupID), s.state.Settings.UserPermission); err != nil {
		return model.Checklist{}, err
	}

	var gid *string
	if groupID != nil {
		gid = model.StringPtr(*groupID)
	}
	c := s.newChecklist(name, gid)
	s.state.Checklists = append(s.state.Checklists, c)
	s.state.ActiveChecklistID = model.StringPtr(c.ID)
	s.state.ActiveGroupID = nil
	if gid != nil {
		s.state.ActiveGroupID = model.StringPtr(*gid)
	}
	s.persistLocked(sliceChecklists | sliceActiveChecklist | sliceActiveGroup)

	s.log.Debug("checklist created", zap.String("id", c.ID))
	return c.Clone(), nil
}

func (s *Store) countInGroupLocked(groupID *string) int {
	n := 0
	for _, c := range s.state.Checklists {
		switch {
		case groupID == nil && c.GroupID == nil:
			n++
		case groupID != nil && c.InGroup(*groupID):
			n++
		}
	}
	return n
}

// DeleteChecklist removes the checklist. If it was active, the first
// remaining checklist of the active group becomes active, or none.
func (s *Store) DeleteChecklist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.FindChecklist(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrChecklistNotFound, id)
	}
	s.state.Checklists = append(s.state.Checklists[:i], s.state.Checklists[i+1:]...)

	parts := sliceChecklists
	if active := s.state.ActiveChecklistID; active != nil && *active == id {
		s.state.ActiveChecklistID = s.firstInActiveGroupLocked()
		parts |= sliceActiveChecklist
	}
	s.persistLocked(parts)
	return nil
}

func (s *Store) firstInActiveGroupLocked() *string {
	for _, c := range s.state.Checklists {
		if s.state.ActiveGroupID == nil {
			if c.GroupID == nil {
				return model.StringPtr(c.ID)
			}
			continue
		}
		if c.InGroup(*s.state.ActiveGroupID) {
			return model.StringPtr(c.ID)
		}
	}
	return nil
}

// UpdateChecklistName renames a checklist.
func (s *Store) UpdateChecklistName(id, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.mutateChecklist(id, func(c *model.Checklist) error {
		c.Name = name
		return nil
	})
}

// SetActiveChecklist activates a checklist and its group.
func (s *Store) SetActiveChecklist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.FindChecklist(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrChecklistNotFound, id)
	}
	s.state.ActiveChecklistID = model.StringPtr(id)
	s.state.ActiveGroupID = nil
	if gid := s.state.Checklists[i].GroupID; gid != nil {
		s.state.ActiveGroupID = model.StringPtr(*gid)
	}
	s.persistLocked(sliceActiveChecklist | sliceActiveGroup)
	return nil
}

// AddItem appends an unchecked item. An empty icon selects the default.
func (s *Store) AddItem(checklistID, title, icon string) (model.ChecklistItem, error) {
	if err := validateName(title); err != nil {
		return model.ChecklistItem{}, err
	}
	if icon == "" {
		icon = model.DefaultItemIcon
	}

	var item model.ChecklistItem
	err := s.mutateChecklist(checklistID, func(c *model.Checklist) error {
		item = model.ChecklistItem{
			ID:        s.newID(),
			Title:     title,
			Icon:      icon,
			Order:     len(c.Items),
			CreatedAt: s.nowMillis(),
		}
		c.Items = append(c.Items, item)
		return nil
	})
	return item, err
}

// DeleteItem removes an item and renumbers the rest contiguously.
func (s *Store) DeleteItem(checklistID, itemID string) error {
	return s.mutateChecklist(checklistID, func(c *model.Checklist) error {
		i := findItem(c, itemID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		for j := range c.Items {
			c.Items[j].Order = j
		}
		return nil
	})
}

// UpdateItem retitles an item.
func (s *Store) UpdateItem(checklistID, itemID, title string) error {
	if err := validateName(title); err != nil {
		return err
	}
	return s.mutateChecklist(checklistID, func(c *model.Checklist) error {
		i := findItem(c, itemID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
		}
		c.Items[i].Title = title
		return nil
	})
}

// ToggleItemCheck flips an item's checked state and returns the new value.
func (s *Store) ToggleItemCheck(checklistID, itemID string) (bool, error) {
	var checked bool
	err := s.mutateChecklist(checklistID, func(c *model.Checklist) error {
		i := findItem(c, itemID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
		}
		c.Items[i].Checked = !c.Items[i].Checked
		checked = c.Items[i].Checked
		return nil
	})
	return checked, err
}

// ResetAllItems unchecks every item of one checklist.
func (s *Store) ResetAllItems(checklistID string) error {
	return s.mutateChecklist(checklistID, func(c *model.Checklist) error {
		uncheck(c)
		return nil
	})
}

// ResetAllChecklists unchecks every item of every checklist.
func (s *Store) ResetAllChecklists() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Checklists {
		c := &s.state.Checklists[i]
		uncheck(c)
		s.touch(c)
	}
	s.persistLocked(sliceChecklists)
}

// ResetAllItemsInGroup removes every item from every checklist in the
// group. Unlike ResetAllItems this deletes the items rather than
// unchecking them; the checklists themselves remain.
func (s *Store) ResetAllItemsInGroup(groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.FindGroup(groupID) < 0 {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	for i := range s.state.Checklists {
		c := &s.state.Checklists[i]
		if !c.InGroup(groupID) {
			continue
		}
		c.Items = []model.ChecklistItem{}
		s.touch(c)
	}
	s.persistLocked(sliceChecklists)
	return nil
}

// ReorderItems arranges the items in the order of itemIDs, which must be a
// permutation of the checklist's item ids. Only Order changes.
func (s *Store) ReorderItems(checklistID string, itemIDs []string) error {
	return s.mutateChecklist(checklistID, func(c *model.Checklist) error {
		if len(itemIDs) != len(c.Items) {
			return ErrInvalidOrder
		}
		byID := make(map[string]model.ChecklistItem, len(c.Items))
		for _, item := range c.Items {
			byID[item.ID] = item
		}
		reordered := make([]model.ChecklistItem, 0, len(itemIDs))
		for i, id := range itemIDs {
			item, ok := byID[id]
			if !ok {
				return fmt.Errorf("%w: unknown or repeated item %s", ErrInvalidOrder, id)
			}
			delete(byID, id)
			item.Order = i
			reordered = append(reordered, item)
		}
		c.Items = reordered
		return nil
	})
}

// mutateChecklist applies fn to a checklist, refreshes its updatedAt and
// persists the checklists slice. Nothing changes if fn fails.
func (s *Store) mutateChecklist(id string, fn func(c *model.Checklist) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.FindChecklist(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrChecklistNotFound, id)
	}
	c := s.state.Checklists[i].Clone()
	if err := fn(&c); err != nil {
		return err
	}
	s.touch(&c)
	s.state.Checklists[i] = c
	s.persistLocked(sliceChecklists)
	return nil
}

func findItem(c *model.Checklist, itemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func uncheck(c *model.Checklist) {
	for i := range c.Items {
		c.Items[i].Checked = false
	}
}
