package component

import (
	"strings"

	"journeo/chat"
	"journeo/llm/agent"
	"journeo/pubsub"
	"journeo/tui/component/renderer"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ListModel is the scrolling transcript. Blocks are rendered once when they
// arrive; only wrapping is redone on resize.
type ListModel struct {
	viewport viewport.Model
	blocks   []string
	width    int
	height   int
	ready    bool

	renderer *renderer.MessageRenderer
}

// NewListModel creates a transcript that opens with greeting.
func NewListModel(greeting string) ListModel {
	m := ListModel{
		viewport: viewport.New(30, 5),
		renderer: renderer.NewMessageRenderer(nil),
		width:    30,
		height:   5,
		ready:    true,
	}
	m.AddEntry(chat.Entry{Role: chat.RoleAssistant, Content: greeting})
	return m
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.viewport.ScrollUp(3)
		case tea.MouseButtonWheelDown:
			m.viewport.ScrollDown(3)
		}
		return m, nil
	case EditorSubmitMsg:
		m.AddEntry(chat.Entry{Role: chat.RoleUser, Content: msg.Value})
		return m, nil
	case pubsub.Event[agent.Event]:
		if msg.Type == pubsub.UpdatedEvent && msg.Payload != nil {
			m.add(m.renderer.RenderEvent(msg.Payload))
		}
		return m, nil
	case ReplyMsg:
		m.AddEntry(chat.Entry{Role: chat.RoleAssistant, Content: msg.Answer.Text})
		m.add(m.renderer.RenderConfirmation(msg.Answer.Confirmation))
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ListModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.viewport.View()
}

// AddEntry appends a transcript entry.
func (m *ListModel) AddEntry(e chat.Entry) {
	m.add(m.renderer.RenderEntry(e))
}

// Clear empties the transcript.
func (m *ListModel) Clear() {
	m.blocks = nil
	m.refresh()
}

// Len returns the number of rendered blocks.
func (m ListModel) Len() int {
	return len(m.blocks)
}

// SetSize resizes the viewport and rewraps the content.
func (m *ListModel) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.ready = true

	m.renderer.SetViewportWidth(width)
	m.refresh()
}

func (m *ListModel) add(block string) {
	if block == "" {
		return
	}
	m.blocks = append(m.blocks, block)
	m.refresh()
}

func (m *ListModel) refresh() {
	m.viewport.SetContent(m.renderer.Wrap(strings.Join(m.blocks, "\n\n")))
	m.viewport.GotoBottom()
}
