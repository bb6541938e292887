package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nhle/check-me-out/internal/model"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderGroupTabs prints the groups on one line, highlighting the active one.
func (s *session) renderGroupTabs(st model.AppState) {
	var tabs []string
	for _, g := range st.Groups {
		label := s.store.GroupLabel(g)
		if st.ActiveGroupID != nil && *st.ActiveGroupID == g.ID {
			tabs = append(tabs, s.styles.ActiveGroup.Render("["+label+"]"))
			continue
		}
		tabs = append(tabs, s.styles.Group.Render(label))
	}
	if n := len(ungrouped(st)); n > 0 {
		tabs = append(tabs, s.styles.Group.Render(fmt.Sprintf("(ungrouped: %d)", n)))
	}
	_, _ = fmt.Fprintln(s.stdout, strings.Join(tabs, " "))
}

func ungrouped(st model.AppState) []model.Checklist {
	var out []model.Checklist
	for _, c := range st.Checklists {
		if c.GroupID == nil {
			out = append(out, c)
		}
	}
	return out
}

// renderChecklist prints one checklist with its progress and items.
func (s *session) renderChecklist(c model.Checklist) {
	stats := c.Stats()
	progress := s.styles.Progress(stats.Progress).
		Render(fmt.Sprintf("%d/%d %.0f%%", stats.Checked, stats.Total, stats.Progress))
	_, _ = fmt.Fprintf(s.stdout, "%s %s\n", s.styles.Header.Render(c.Name), progress)

	if len(c.Items) == 0 {
		_, _ = fmt.Fprintln(s.stdout, s.styles.Help.Render("  (no items)"))
		return
	}
	for i, item := range c.Items {
		mark, style := "[ ]", s.styles.Pending
		if item.Checked {
			mark, style = "[x]", s.styles.Checked
		}
		_, _ = fmt.Fprintf(s.stdout, "%s%s %s\n",
			s.styles.Index.Render(fmt.Sprintf("%d.", i+1)),
			mark,
			style.Render(item.Title),
		)
	}
	if c.IsDone() {
		_, _ = fmt.Fprintln(s.stdout, s.styles.Help.Render("  all set, have a good day"))
	}
}

// showActive prints the group tabs and the active checklist.
func (s *session) showActive() error {
	st := s.store.Snapshot()
	if s.cfg.JSON {
		return printJSON(s.stdout, st)
	}
	s.renderGroupTabs(st)
	c, ok := s.store.ActiveChecklist()
	if !ok {
		_, _ = fmt.Fprintln(s.stdout, s.styles.Help.Render("no active checklist"))
		return nil
	}
	s.renderChecklist(c)
	return nil
}

// showAll prints every checklist grouped by group.
func (s *session) showAll() error {
	st := s.store.Snapshot()
	if s.cfg.JSON {
		return printJSON(s.stdout, st)
	}
	for _, g := range st.Groups {
		_, _ = fmt.Fprintln(s.stdout, s.styles.ActiveGroup.Render(s.store.GroupLabel(g)))
		for _, c := range st.ChecklistsInGroup(g.ID) {
			s.renderChecklist(c)
		}
	}
	if rest := ungrouped(st); len(rest) > 0 {
		_, _ = fmt.Fprintln(s.stdout, s.styles.Group.Render("ungrouped"))
		for _, c := range rest {
			s.renderChecklist(c)
		}
	}
	return nil
}

func (s *session) renderSettings(st model.AppSettings, lastReset string) {
	format := st.ClockFormat
	notify := "off"
	if st.Notification.Enabled {
		notify = "on at " + model.FormatClockForDisplay(st.Notification.Time, format)
	}
	resetAt := "off"
	if st.ResetTime != nil {
		resetAt = model.FormatClockForDisplay(*st.ResetTime, format)
	}
	if lastReset == "" {
		lastReset = "never"
	}

	lines := []string{
		fmt.Sprintf("tier:        %s", st.UserPermission),
		fmt.Sprintf("language:    %s", st.Language),
		fmt.Sprintf("theme:       %s", st.Theme),
		fmt.Sprintf("clock:       %s", st.ClockFormat),
		fmt.Sprintf("reminder:    %s", notify),
		fmt.Sprintf("daily reset: %s (last %s)", resetAt, lastReset),
	}
	_, _ = fmt.Fprintln(s.stdout, s.styles.Panel.Render(strings.Join(lines, "\n")))
}
