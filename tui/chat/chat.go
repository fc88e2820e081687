package chat

import (
	"context"
	"time"

	chatsvc "journeo/chat"
	"journeo/llm/agent"
	"journeo/pubsub"
	"journeo/tui/component"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Asker answers a chat turn.
type Asker interface {
	Greeting() string
	Ask(ctx context.Context, sessionID, text string) chatsvc.Answer
	Reset(ctx context.Context, sessionID string) error
}

// Model is the chat screen: transcript, status line and editor.
type Model struct {
	list   component.ListModel
	edit   component.EditModel
	status component.StatusModel

	service   Asker
	sessionID string
	sub       <-chan pubsub.Event[agent.Event]
	ctx       context.Context
	busy      bool

	width  int
	height int
}

// InitialModel creates the chat screen for a new session. events may be nil.
func InitialModel(ctx context.Context, service Asker, events pubsub.Subscriber[agent.Event]) Model {
	var sub <-chan pubsub.Event[agent.Event]
	if events != nil {
		sub = events.Subscribe(ctx)
	}

	return Model{
		list:      component.NewListModel(service.Greeting()),
		edit:      component.NewEditModel(),
		status:    component.NewStatusModel(),
		service:   service,
		sessionID: chatsvc.NewSessionID(),
		sub:       sub,
		ctx:       ctx,
	}
}

// Run shows the chat screen until the user quits.
func Run(ctx context.Context, service Asker, events pubsub.Subscriber[agent.Event]) error {
	program := tea.NewProgram(
		InitialModel(ctx, service, events),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.list.Init(),
		m.edit.Init(),
		m.status.Init(),
		m.waitForEvent(),
	)
}

func (m Model) waitForEvent() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		event, ok := <-sub
		if !ok {
			return nil
		}
		return event
	}
}

func (m Model) ask(text string) tea.Cmd {
	ctx, service, sessionID := m.ctx, m.service, m.sessionID
	return func() tea.Msg {
		start := time.Now()
		answer := service.Ask(ctx, sessionID, text)
		return component.ReplyMsg{Answer: answer, Elapsed: time.Since(start)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case component.EditorSubmitMsg:
		// one run at a time
		if m.busy {
			return m, nil
		}
		m.busy = true
		cmds = append(cmds, m.ask(msg.Value))

	case component.ReplyMsg:
		m.busy = false

	case pubsub.Event[agent.Event]:
		cmds = append(cmds, m.waitForEvent())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlN:
			if !m.busy {
				_ = m.service.Reset(m.ctx, m.sessionID)
				m.sessionID = chatsvc.NewSessionID()
				m.list.Clear()
				m.list.AddEntry(chatsvc.Entry{Role: chatsvc.RoleAssistant, Content: m.service.Greeting()})
				return m, nil
			}
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)

	m.edit, cmd = m.edit.Update(msg)
	cmds = append(cmds, cmd)

	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) layout() {
	statusHeight := lipgloss.Height(m.status.View())
	editHeight := m.edit.Height()
	listHeight := m.height - statusHeight - editHeight

	m.list.SetSize(m.width, listHeight)
	m.edit.SetWidth(m.width)
	m.status.SetWidth(m.width)
}

func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.list.View(),
		m.status.View(),
		m.edit.View(),
	)
}
