package component

import (
	"fmt"

	"journeo/llm/agent"
	"journeo/pubsub"
	"journeo/tui/component/renderer"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const readyText = "Ready"

// StatusModel shows a spinner and what the agents are doing.
type StatusModel struct {
	spinner spinner.Model
	running bool
	text    string
	width   int
}

// NewStatusModel creates an idle status line.
func NewStatusModel() StatusModel {
	s := spinner.New()
	s.Spinner = spinner.Jump
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return StatusModel{
		spinner: s,
		text:    readyText,
	}
}

func (m StatusModel) Init() tea.Cmd {
	return nil
}

func (m StatusModel) Update(msg tea.Msg) (StatusModel, tea.Cmd) {
	switch msg := msg.(type) {
	case EditorSubmitMsg:
		return m.start("Planning your trip...")
	case pubsub.Event[agent.Event]:
		switch msg.Type {
		case pubsub.StartedEvent:
			if !m.running {
				return m.start("Planning your trip...")
			}
		case pubsub.UpdatedEvent:
			if text := progressText(msg.Payload); text != "" {
				m.text = text
			}
		}
	case ReplyMsg:
		m.running = false
		if msg.Answer.Fallback {
			m.text = fmt.Sprintf("Failed after %s", renderer.FormatDuration(msg.Elapsed))
		} else {
			m.text = fmt.Sprintf("Done in %s", renderer.FormatDuration(msg.Elapsed))
		}
		return m, nil
	}

	if m.running {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m StatusModel) start(text string) (StatusModel, tea.Cmd) {
	m.text = text
	if m.running {
		return m, nil
	}
	m.running = true
	return m, m.spinner.Tick
}

func progressText(e agent.Event) string {
	switch e := e.(type) {
	case agent.AgentUpdated:
		return fmt.Sprintf("Handing over to %s...", e.NewAgent)
	case agent.ToolCalled:
		if len(e.Calls) > 0 {
			return fmt.Sprintf("%s is calling %s...", e.AgentName, e.Calls[0].Function.Name)
		}
	case agent.ToolOutput:
		return fmt.Sprintf("%s got results from %s", e.AgentName, e.ToolName)
	}
	return ""
}

func (m StatusModel) View() string {
	style := lipgloss.NewStyle().Padding(1, 0)
	if m.width > 0 {
		style = style.Width(m.width)
	}
	content := m.text
	if m.running {
		content = fmt.Sprintf("%s %s", m.spinner.View(), m.text)
	}
	return style.Render(content)
}

// SetWidth sets the status line width.
func (m *StatusModel) SetWidth(width int) {
	m.width = width
}

// Text returns the current status text.
func (m StatusModel) Text() string {
	return m.text
}

// IsRunning reports whether a run is in flight.
func (m StatusModel) IsRunning() bool {
	return m.running
}
