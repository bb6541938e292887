// Package theme holds the lipgloss styles used to print checklists.
package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/check-me-out/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// Styles is a style set bound to one output.
type Styles struct {
	Header       lipgloss.Style
	Group        lipgloss.Style
	ActiveGroup  lipgloss.Style
	Checked      lipgloss.Style
	Pending      lipgloss.Style
	Index        lipgloss.Style
	Help         lipgloss.Style
	Warning      lipgloss.Style
	Panel        lipgloss.Style
	progressBase lipgloss.Style
}

// New builds styles for w. The stored theme decides which half of each
// adaptive color is used.
func New(w io.Writer, t model.Theme) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(t == model.ThemeDark)

	return Styles{
		Header: r.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorBlue).
			Padding(0, 1),
		Group: r.NewStyle().
			Foreground(ColorGray).
			PaddingRight(1),
		ActiveGroup: r.NewStyle().
			Bold(true).
			Foreground(ColorBlue).
			Underline(true).
			PaddingRight(1),
		Checked: r.NewStyle().
			Foreground(ColorGreen).
			Strikethrough(true),
		Pending: r.NewStyle().
			Foreground(ColorWhite),
		Index: r.NewStyle().
			Foreground(ColorGray).
			Width(4).
			Align(lipgloss.Right).
			PaddingRight(1),
		Help: r.NewStyle().
			Foreground(ColorGray).
			Italic(true),
		Warning: r.NewStyle().
			Bold(true).
			Foreground(ColorYellow),
		Panel: r.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder),
		progressBase: r.NewStyle().Bold(true),
	}
}

// Progress returns a color-coded style for a completion percentage.
func (s Styles) Progress(percent float64) lipgloss.Style {
	switch {
	case percent >= 100:
		return s.progressBase.Foreground(ColorGreen)
	case percent >= 50:
		return s.progressBase.Foreground(ColorYellow)
	case percent > 0:
		return s.progressBase.Foreground(ColorRed)
	default:
		return s.progressBase.Foreground(ColorGray)
	}
}
