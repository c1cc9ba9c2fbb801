// Package theme holds the static styling configuration for command
// output. Purely cosmetic; nothing here feeds back into core logic.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Purple
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginTop(1)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	SuccessText = lipgloss.NewStyle().
			Foreground(Success)
)

// LevelTheme is the per-level display configuration.
type LevelTheme struct {
	Emoji string
	Color color.Color
}

// levelThemes keys are level names, not the core Level type: the theme
// layer stays ignorant of core types on purpose.
var levelThemes = map[string]LevelTheme{
	"beginner":     {Emoji: "🌱", Color: lipgloss.Color("#A855F7")}, // purple
	"elementary":   {Emoji: "📚", Color: lipgloss.Color("#3B82F6")}, // blue
	"intermediate": {Emoji: "🎓", Color: lipgloss.Color("#22C55E")}, // green
	"advanced":     {Emoji: "🎯", Color: lipgloss.Color("#EC4899")}, // pink
	"expert":       {Emoji: "🔬", Color: lipgloss.Color("#F59E0B")}, // amber
}

// ForLevel returns the display theme for a level name, with a neutral
// fallback for anything unrecognized.
func ForLevel(level string) LevelTheme {
	if t, ok := levelThemes[level]; ok {
		return t
	}
	return LevelTheme{Emoji: "💡", Color: TextDim}
}

// LevelBadge renders a colored level label like "🎓 intermediate".
func LevelBadge(level string) string {
	t := ForLevel(level)
	style := lipgloss.NewStyle().Foreground(t.Color).Bold(true)
	return t.Emoji + " " + style.Render(level)
}
