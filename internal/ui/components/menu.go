package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainrot/internal/ui/theme"
)

// Menu is a vertical list with a movable cursor.
type Menu struct {
	Items    []string
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []string) Menu {
	return Menu{Items: items}
}

// Update moves the cursor on up/down and reports whether it moved.
func (m Menu) Update(msg tea.Msg) (Menu, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, false
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
			return m, true
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
			return m, true
		}
	}
	return m, false
}

// Current returns the item under the cursor.
func (m Menu) Current() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected]
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("▸ " + item))
		} else {
			b.WriteString(theme.Unselected.Render("  " + item))
		}
		b.WriteString("\n")
	}
	return b.String()
}
