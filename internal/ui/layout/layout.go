package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/brainrot/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Brand is shown at the left of the header.
	Brand = "Brain Rot"

	// Credit is shown at the right of the footer.
	Credit = "© 2024 Brain Rot. Được trang bị bởi AI."
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Cửa sổ terminal quá nhỏ!\n\nVui lòng mở rộng tới\nít nhất %d x %d\n\nHiện tại: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the brand on the left and the tab bar on the right.
func RenderHeader(tabs []string, active int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(Brand)

	right := RenderTabs(tabs, active)

	innerWidth := width - 4
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(left + strings.Repeat(" ", gap) + right)
}

// RenderTabs renders numbered tabs, highlighting active.
func RenderTabs(tabs []string, active int) string {
	parts := make([]string, 0, len(tabs))
	for i, name := range tabs {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// RenderFooter renders key hints on the left and the credit on the right.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}
	left := strings.Join(parts, "   ")

	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(Credit)

	content := left
	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap >= 2 {
		content = left + strings.Repeat(" ", gap) + right
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := ContentHeight(header, footer, height)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Padding(0, 2).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}

// ContentHeight returns the rows left for screen content.
func ContentHeight(header, footer string, height int) int {
	h := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if h < 0 {
		return 0
	}
	return h
}
