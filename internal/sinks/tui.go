package sinks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventize/internal/event"
)

// TUISink renders canonical events in a live terminal view. It is meant for
// watching a stream interactively; the stdout sink is the machine-readable
// one.
type TUISink struct {
	MaxLines int // history kept in the viewport, 0 means 500
}

type eventMsg event.Canonical

type streamDoneMsg struct{}

func (s *TUISink) Run(ctx context.Context, in <-chan event.Canonical) error {
	maxLines := s.MaxLines
	if maxLines <= 0 {
		maxLines = 500
	}

	p := tea.NewProgram(newTUIModel(maxLines), tea.WithContext(ctx))

	go func() {
		for evt := range in {
			p.Send(eventMsg(evt))
		}
		p.Send(streamDoneMsg{})
	}()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type tuiModel struct {
	vp       viewport.Model
	lines    []string
	maxLines int
	count    int
	ready    bool
	done     bool
}

func newTUIModel(maxLines int) *tuiModel {
	return &tuiModel{maxLines: maxLines}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 2
		}
		m.vp.SetContent(strings.Join(m.lines, "\n"))

	case eventMsg:
		m.count++
		m.lines = append(m.lines, renderEvent(event.Canonical(msg)))
		if len(m.lines) > m.maxLines {
			m.lines = m.lines[len(m.lines)-m.maxLines:]
		}
		if m.ready {
			m.vp.SetContent(strings.Join(m.lines, "\n"))
			m.vp.GotoBottom()
		}

	case streamDoneMsg:
		m.done = true
	}

	var cmd tea.Cmd
	if m.ready {
		m.vp, cmd = m.vp.Update(msg)
	}
	return m, cmd
}

func (m *tuiModel) View() string {
	if !m.ready {
		return "starting..."
	}
	status := fmt.Sprintf("%d events", m.count)
	if m.done {
		status += " (stream ended, q to quit)"
	}
	header := titleStyle.Render("eventize") + " " + dimStyle.Render(status)
	return header + "\n" + m.vp.View() + "\n"
}

// renderEvent formats one canonical event as "category {payload json}".
func renderEvent(evt event.Canonical) string {
	var b strings.Builder
	for category, payload := range evt {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(categoryStyle.Render(category))
		data, err := json.Marshal(payload)
		if err != nil {
			data = []byte(fmt.Sprintf("%v", payload))
		}
		b.WriteString(" ")
		b.WriteString(string(data))
	}
	return b.String()
}
