package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sofmeright/nativex-launcher/src/build"
)

// Action is what the user asked for when the panel closed.
type Action int

const (
	ActionQuit Action = iota
	ActionEdit
)

const (
	eventBuffer = 1024
	batchLimit  = 256
	scrollback  = 5000 // lines kept in the viewport; Log keeps everything
	chromeLines = 4 // title, request summary, status, help
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	readyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type (
	triggerMsg struct{}
	clearMsg   struct{}
	lineMsg    string
	enabledMsg bool
	eventsMsg  []tea.Msg
)

// events is the Display the panel writes to. Messages queue in order and
// the model pulls them on the UI goroutine.
type events chan tea.Msg

func (e events) Clear()                       { e <- clearMsg{} }
func (e events) AppendLine(line string)       { e <- lineMsg(line) }
func (e events) SetBuildEnabled(enabled bool) { e <- enabledMsg(enabled) }

// next waits for one event and collects whatever else is already queued.
func (e events) next() tea.Cmd {
	return func() tea.Msg {
		batch := eventsMsg{<-e}
		for len(batch) < batchLimit {
			select {
			case msg := <-e:
				batch = append(batch, msg)
			default:
				return batch
			}
		}
		return batch
	}
}

// Model is the bubbletea model for the build panel: a trigger, a status
// line and a scrolling log view.
type Model struct {
	req     build.BuildRequest
	trigger func(build.BuildRequest) error
	events  events

	viewport viewport.Model
	lines    []string
	enabled  bool
	notice   string
	action   Action
}

// NewModel creates a panel model that starts a build as soon as it runs.
func NewModel(l *build.Launcher, req build.BuildRequest) *Model {
	ev := make(events, eventBuffer)
	panel := build.NewPanel(l, ev)
	return newModel(req, panel.Trigger, ev)
}

func newModel(req build.BuildRequest, trigger func(build.BuildRequest) error, ev events) *Model {
	return &Model{
		req:      req,
		trigger:  trigger,
		events:   ev,
		viewport: viewport.New(80, 20),
		enabled:  true,
	}
}

// Action reports how the panel was closed.
func (m *Model) Action() Action {
	return m.action
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return triggerMsg{} },
		m.events.next(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeLines, 1)
		return m, nil

	case triggerMsg:
		m.startBuild()
		return m, nil

	case eventsMsg:
		for _, ev := range msg {
			m.apply(ev)
		}
		m.refresh()
		return m, m.events.next()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.action = ActionQuit
			return m, tea.Quit
		case "b":
			if m.enabled {
				m.startBuild()
			}
			return m, nil
		case "e":
			if m.enabled {
				m.action = ActionEdit
				return m, tea.Quit
			}
			return m, nil
		case "q":
			if m.enabled {
				m.action = ActionQuit
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) startBuild() {
	m.notice = ""
	if err := m.trigger(m.req); err != nil {
		if errors.Is(err, build.ErrBusy) {
			m.notice = "a build is already running"
			return
		}
		m.notice = err.Error()
		return
	}
	// Disable right away; the panel's own enabled=false event follows.
	m.enabled = false
}

func (m *Model) apply(ev tea.Msg) {
	switch ev := ev.(type) {
	case clearMsg:
		m.lines = nil
	case lineMsg:
		m.lines = append(m.lines, string(ev))
	case enabledMsg:
		m.enabled = bool(ev)
	}
}

// refresh pushes the newest lines into the viewport, following the tail
// unless the user has scrolled up. Only the last scrollback lines are
// rendered so a long build costs the same per batch as a short one.
func (m *Model) refresh() {
	follow := m.viewport.AtBottom()
	m.viewport.SetContent(strings.Join(m.lines[max(len(m.lines)-scrollback, 0):], "\n"))
	if follow {
		m.viewport.GotoBottom()
	}
}

// Log returns everything the log view currently holds.
func (m *Model) Log() string {
	if len(m.lines) == 0 {
		return ""
	}
	return strings.Join(m.lines, "\n") + "\n"
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NativeX Builder"))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s → %s/%s → %s",
		m.req.JARPath, m.req.OS, m.req.Arch, m.req.BuildLocation)))
	b.WriteByte('\n')

	if m.enabled {
		b.WriteString(readyStyle.Render("● ready"))
	} else {
		b.WriteString(runningStyle.Render("● building…"))
	}
	if m.notice != "" {
		b.WriteString("  " + dimStyle.Render(m.notice))
	}
	b.WriteByte('\n')

	b.WriteString(m.viewport.View())
	b.WriteByte('\n')

	if m.enabled {
		b.WriteString(dimStyle.Render("b build · e edit · q quit · ↑/↓ scroll"))
	} else {
		b.WriteString(dimStyle.Render("↑/↓ scroll · ctrl+c abandon"))
	}
	return b.String()
}
