package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nhle/check-me-out/internal/model"
	"github.com/nhle/check-me-out/internal/state"
)

// resolveChecklist finds a checklist by id or name. An empty ref means the
// active checklist. Name matches prefer the active group.
func (s *session) resolveChecklist(ref string) (model.Checklist, error) {
	st := s.store.Snapshot()
	if ref == "" {
		if c, ok := s.store.ActiveChecklist(); ok {
			return c, nil
		}
		return model.Checklist{}, fmt.Errorf("%w: no active checklist", state.ErrChecklistNotFound)
	}
	if i := st.FindChecklist(ref); i >= 0 {
		return st.Checklists[i], nil
	}

	var match *model.Checklist
	for i := range st.Checklists {
		c := &st.Checklists[i]
		if !strings.EqualFold(c.Name, ref) {
			continue
		}
		if st.ActiveGroupID != nil && c.InGroup(*st.ActiveGroupID) {
			return *c, nil
		}
		if match == nil {
			match = c
		}
	}
	if match != nil {
		return *match, nil
	}
	return model.Checklist{}, fmt.Errorf("%w: %q", state.ErrChecklistNotFound, ref)
}

// resolveGroup finds a group by id, stored name or display label.
func (s *session) resolveGroup(ref string) (model.ChecklistGroup, error) {
	st := s.store.Snapshot()
	if i := st.FindGroup(ref); i >= 0 {
		return st.Groups[i], nil
	}
	for _, g := range st.Groups {
		if strings.EqualFold(g.Name, ref) || strings.EqualFold(s.store.GroupLabel(g), ref) {
			return g, nil
		}
	}
	return model.ChecklistGroup{}, fmt.Errorf("%w: %q", state.ErrGroupNotFound, ref)
}

// resolveItem finds an item by 1-based position, id or title.
func resolveItem(c model.Checklist, ref string) (model.ChecklistItem, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(c.Items) {
			return c.Items[n-1], nil
		}
		return model.ChecklistItem{}, fmt.Errorf("%w: no item #%d in %q", state.ErrItemNotFound, n, c.Name)
	}
	for _, item := range c.Items {
		if item.ID == ref {
			return item, nil
		}
	}
	for _, item := range c.Items {
		if strings.EqualFold(item.Title, ref) {
			return item, nil
		}
	}
	return model.ChecklistItem{}, fmt.Errorf("%w: %q in %q", state.ErrItemNotFound, ref, c.Name)
}
