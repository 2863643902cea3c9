package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: sky accents on slate, emerald for success.
var (
	Primary   = lipgloss.Color("#0EA5E9") // Sky
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#10B981") // Emerald
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#E2E8F0") // Slate 200
	TextDim   = lipgloss.Color("#94A3B8") // Slate 400
	BgDark    = lipgloss.Color("#0F172A") // Slate 900
	BgCard    = lipgloss.Color("#1E293B") // Slate 800
	Border    = lipgloss.Color("#334155") // Slate 700
)

// ChartColors colors the consumption breakdown, cycling by position.
var ChartColors = []color.Color{
	lipgloss.Color("#0088FE"),
	lipgloss.Color("#00C49F"),
	lipgloss.Color("#FFBB28"),
	lipgloss.Color("#FF8042"),
	lipgloss.Color("#AF19FF"),
	lipgloss.Color("#FF1943"),
	lipgloss.Color("#19D4FF"),
}

// ChartColor returns the breakdown color for the i-th category.
func ChartColor(i int) color.Color {
	if i < 0 {
		i = -i
	}
	return ChartColors[i%len(ChartColors)]
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Border)

	Score = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
)

// Components
var (
	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(Border).
			Foreground(TextDim).
			Padding(0, 2)
)
