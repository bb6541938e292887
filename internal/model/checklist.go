package model

import (
	"errors"
	"strings"
)

// DefaultItemIcon is used when an item is added without an icon.
const DefaultItemIcon = "checkbox-marked-circle-outline"

// DefaultGroupName is the stored name of the group created on first run.
const DefaultGroupName = "default"

var ErrEmptyTitle = errors.New("model: title must not be empty")

// ChecklistItem is a single checkable entry. Its lifecycle is bound to the
// owning checklist.
type ChecklistItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Icon      string `json:"icon,omitempty"`
	Checked   bool   `json:"checked"`
	Order     int    `json:"order"`
	CreatedAt int64  `json:"createdAt"`
}

// Checklist is a named, ordered collection of items. GroupID is a weak
// reference to a ChecklistGroup; nil means ungrouped.
type Checklist struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Items     []ChecklistItem `json:"items"`
	GroupID   *string         `json:"groupId"`
	CreatedAt int64           `json:"createdAt"`
	UpdatedAt int64           `json:"updatedAt"`
}

// ChecklistGroup labels a partition of checklists.
type ChecklistGroup struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	Order     int    `json:"order"`
	CreatedAt int64  `json:"createdAt"`
}

// ChecklistStats summarizes check progress of a checklist.
type ChecklistStats struct {
	Total    int
	Checked  int
	Pending  int
	Progress float64 // 0-100
}

// InGroup reports whether the checklist references groupID.
func (c Checklist) InGroup(groupID string) bool {
	return c.GroupID != nil && *c.GroupID == groupID
}

// Stats returns the check progress of the checklist.
func (c Checklist) Stats() ChecklistStats {
	total := len(c.Items)
	if total == 0 {
		return ChecklistStats{}
	}
	checked := 0
	for _, item := range c.Items {
		if item.Checked {
			checked++
		}
	}
	return ChecklistStats{
		Total:    total,
		Checked:  checked,
		Pending:  total - checked,
		Progress: float64(checked) / float64(total) * 100,
	}
}

// IsDone reports whether every item is checked. An empty checklist is not done.
func (c Checklist) IsDone() bool {
	if len(c.Items) == 0 {
		return false
	}
	for _, item := range c.Items {
		if !item.Checked {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the checklist.
func (c Checklist) Clone() Checklist {
	out := c
	if c.Items != nil {
		out.Items = make([]ChecklistItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	if c.GroupID != nil {
		id := *c.GroupID
		out.GroupID = &id
	}
	return out
}

// ValidateTitle rejects blank titles and names.
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}
