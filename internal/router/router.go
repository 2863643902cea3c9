package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainrot/internal/screen"
)

// SwitchMsg requests the router to show the tab at Index.
type SwitchMsg struct {
	Index int
}

// Tab is one switchable view.
type Tab struct {
	Name    string
	Factory screen.Factory
}

// scoped carries a message produced by a command of one screen instance.
// Messages from replaced instances are dropped on arrival.
type scoped struct {
	gen uint64
	msg tea.Msg
}

// Router shows one tab at a time. Every switch builds the target screen
// fresh from its factory, so nothing survives leaving a tab.
type Router struct {
	tabs    []Tab
	active  int
	current screen.Screen
	gen     uint64
}

// New creates a Router showing the first tab. It panics without tabs.
func New(tabs []Tab) *Router {
	if len(tabs) == 0 {
		panic("router: no tabs")
	}
	r := &Router{tabs: tabs}
	r.build(0)
	return r
}

func (r *Router) build(i int) {
	r.active = i
	r.gen++
	r.current = r.tabs[i].Factory()
}

// Init runs the initial screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.scope(r.current.Init())
}

// Switch shows tab i. Switching to the visible tab or out of range is a
// no-op.
func (r *Router) Switch(i int) tea.Cmd {
	if i < 0 || i >= len(r.tabs) || i == r.active {
		return nil
	}
	r.build(i)
	return r.scope(r.current.Init())
}

// Next switches to the following tab, wrapping around.
func (r *Router) Next() tea.Cmd {
	return r.Switch((r.active + 1) % len(r.tabs))
}

// Prev switches to the preceding tab, wrapping around.
func (r *Router) Prev() tea.Cmd {
	return r.Switch((r.active + len(r.tabs) - 1) % len(r.tabs))
}

// Active returns the visible screen.
func (r *Router) Active() screen.Screen {
	return r.current
}

// ActiveIndex returns the visible tab position.
func (r *Router) ActiveIndex() int {
	return r.active
}

// Names returns the tab names in order.
func (r *Router) Names() []string {
	names := make([]string, len(r.tabs))
	for i, t := range r.tabs {
		names[i] = t.Name
	}
	return names
}

// Update forwards a message to the visible screen and handles switch
// requests.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case SwitchMsg:
		return r.Switch(m.Index)
	case scoped:
		if m.gen != r.gen {
			return nil
		}
		msg = m.msg
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r.scope(cmd)
}

// View renders the visible screen.
func (r *Router) View(width, height int) string {
	return r.current.View(width, height)
}

// scope tags the output of cmd with the current generation.
func (r *Router) scope(cmd tea.Cmd) tea.Cmd {
	return scopeCmd(r.gen, cmd)
}

func scopeCmd(gen uint64, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		switch msg := cmd().(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			cmds := make([]tea.Cmd, len(msg))
			for i, c := range msg {
				cmds[i] = scopeCmd(gen, c)
			}
			return tea.BatchMsg(cmds)
		case tea.QuitMsg:
			return msg
		default:
			return scoped{gen: gen, msg: msg}
		}
	}
}
