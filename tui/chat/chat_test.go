package chat

import (
	"context"
	"testing"

	chatsvc "journeo/chat"
	"journeo/llm/agent"
	"journeo/pubsub"
	"journeo/tui/component"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAsker struct {
	asked  []string
	resets int
}

func (s *stubAsker) Greeting() string { return chatsvc.Greeting }

func (s *stubAsker) Ask(_ context.Context, _ string, text string) chatsvc.Answer {
	s.asked = append(s.asked, text)
	return chatsvc.Answer{Text: "Booked " + text}
}

func (s *stubAsker) Reset(context.Context, string) error {
	s.resets++
	return nil
}

func TestSubmitRunsOneTurnAtATime(t *testing.T) {
	asker := &stubAsker{}
	m := InitialModel(context.Background(), asker, nil)

	updated, cmd := m.Update(component.EditorSubmitMsg{Value: "Karachi to Dubai"})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.True(t, m.status.IsRunning())

	// a second submit while busy is dropped
	updated, _ = m.Update(component.EditorSubmitMsg{Value: "again"})
	m = updated.(Model)

	reply := m.ask("Karachi to Dubai")()
	require.IsType(t, component.ReplyMsg{}, reply)
	assert.Equal(t, []string{"Karachi to Dubai"}, asker.asked)

	updated, _ = m.Update(reply)
	m = updated.(Model)
	assert.False(t, m.busy)
	assert.False(t, m.status.IsRunning())
	assert.Contains(t, m.status.Text(), "Done in")
}

func TestProgressEventsUpdateStatus(t *testing.T) {
	broker := pubsub.NewBroker[agent.Event]()
	defer broker.Shutdown()

	m := InitialModel(context.Background(), &stubAsker{}, broker)
	updated, _ := m.Update(component.EditorSubmitMsg{Value: "go"})
	m = updated.(Model)
	before := m.list.Len()

	broker.Publish(pubsub.UpdatedEvent, agent.AgentUpdated{AgentName: agent.TravelPlannerName, NewAgent: agent.FlightAgentName})
	msg := m.waitForEvent()()
	updated, cmd := m.Update(msg)
	m = updated.(Model)

	assert.NotNil(t, cmd, "model keeps listening for events")
	assert.Equal(t, "Handing over to FlightAgent...", m.status.Text())
	assert.Equal(t, before+1, m.list.Len())
}

func TestNewSessionKey(t *testing.T) {
	asker := &stubAsker{}
	m := InitialModel(context.Background(), asker, nil)
	first := m.sessionID

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(Model)
	assert.NotEqual(t, first, m.sessionID)
	assert.Equal(t, 1, asker.resets)
	assert.Equal(t, 1, m.list.Len())
}

func TestWindowResize(t *testing.T) {
	m := InitialModel(context.Background(), &stubAsker{}, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	assert.Equal(t, 80, m.width)
	assert.NotEmpty(t, m.View())
}
