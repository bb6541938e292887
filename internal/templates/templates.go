// Package templates provides the predefined group templates that premium
// users can import as a new group with a pre-filled checklist.
package templates

import (
	"errors"
	"fmt"

	"github.com/nhle/check-me-out/internal/model"
)

var ErrTemplateNotFound = errors.New("templates: template not found")

// Item is a seed entry of a template.
type Item struct {
	Title string
	Icon  string
}

// Template is a static group name plus its items.
type Template struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Items       []Item
}

// All returns the built-in templates in display order.
func All() []Template {
	out := make([]Template, len(builtin))
	copy(out, builtin)
	return out
}

// ByID looks up a template.
func ByID(id string) (Template, error) {
	for _, t := range builtin {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
}

// Convert builds a new group and a checklist inside it holding the
// template's items in order. newID must return a fresh id on each call.
func Convert(t Template, newID func() string, nowMillis int64, order int) (model.ChecklistGroup, model.Checklist) {
	group := model.ChecklistGroup{
		ID:        newID(),
		Name:      t.Name,
		Icon:      t.Icon,
		Order:     order,
		CreatedAt: nowMillis,
	}

	items := make([]model.ChecklistItem, len(t.Items))
	for i, it := range t.Items {
		items[i] = model.ChecklistItem{
			ID:        newID(),
			Title:     it.Title,
			Icon:      it.Icon,
			Order:     i,
			CreatedAt: nowMillis,
		}
	}

	checklist := model.Checklist{
		ID:        newID(),
		Name:      t.Name,
		Items:     items,
		GroupID:   model.StringPtr(group.ID),
		CreatedAt: nowMillis,
		UpdatedAt: nowMillis,
	}
	return group, checklist
}
