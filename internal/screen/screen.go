package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainrot/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the tab bar.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Factory builds a fresh screen.
type Factory func() Screen

// InputCapturer is an optional interface for screens that consume
// printable keys, such as digits typed into a field. While it reports
// true, global single-key shortcuts are not applied.
type InputCapturer interface {
	CapturesInput() bool
}
