package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entremotivator/turoi/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Results", Key: 'r'},
	{Name: "Milestones", Key: 'm'},
	{Name: "Settings", Key: 's'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tab.Name)
			continue
		}
		// First letter doubles as the shortcut key
		parts[i] = dimStyle.Render("[") + keyStyle.Render(string(tab.Name[0])) + dimStyle.Render("]") +
			inactiveStyle.Render(tab.Name[1:])
	}

	return "  " + strings.Join(parts, "   ")
}
