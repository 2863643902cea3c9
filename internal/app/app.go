package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainrot/internal/router"
	"github.com/abhisek/brainrot/internal/screen"
	"github.com/abhisek/brainrot/internal/screens/glossary"
	"github.com/abhisek/brainrot/internal/screens/quiz"
	"github.com/abhisek/brainrot/internal/screens/tracker"
	"github.com/abhisek/brainrot/internal/ui/layout"
)

// Gateway is everything the screens ask of the AI gateway.
type Gateway interface {
	glossary.Definer
	quiz.Quizzer
	tracker.Analyzer
}

// Tabs returns the switchable views in display order.
func Tabs(gw Gateway) []router.Tab {
	return []router.Tab{
		{Name: "Định Nghĩa", Factory: func() screen.Screen { return glossary.New(gw) }},
		{Name: "Trắc Nghiệm", Factory: func() screen.Screen { return quiz.New(gw) }},
		{Name: "Theo Dõi", Factory: func() screen.Screen { return tracker.New(gw) }},
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// NewAppModel creates an AppModel showing the first tab.
func NewAppModel(tabs []router.Tab) AppModel {
	return AppModel{
		router: router.New(tabs),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m, m.router.Next()
		case "shift+tab":
			return m, m.router.Prev()
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if !m.capturing() {
				return m, m.router.Switch(int(key[0] - '1'))
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturesInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.router.Names(), m.router.ActiveIndex(), m.width)

	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	hints = append(hints,
		layout.KeyHint{Key: "Tab", Description: "Chuyển mục"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Thoát"},
	)
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width-4, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(gw Gateway) error {
	p := tea.NewProgram(NewAppModel(Tabs(gw)))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
