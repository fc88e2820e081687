package renderer

import (
	"fmt"
	"strings"

	"journeo/chat"
	"journeo/llm/agent"
	"journeo/llm/booking"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// MessageRenderer renders transcript entries, run progress and booking
// confirmations for the chat list.
type MessageRenderer struct {
	markdownRenderer *glamour.TermRenderer
	styles           *MessageStyles
	icons            *Icons
	toolRenderer     *ToolRenderer
	viewportWidth    int
}

// NewMessageRenderer creates a renderer. A nil styles selects the defaults.
func NewMessageRenderer(styles *MessageStyles) *MessageRenderer {
	if styles == nil {
		styles = DefaultMessageStyles()
	}
	icons := DefaultIcons()

	// wrapping is done by Wrap
	markdownRenderer, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dracula"),
		glamour.WithWordWrap(0),
	)
	return &MessageRenderer{
		markdownRenderer: markdownRenderer,
		styles:           styles,
		icons:            icons,
		toolRenderer:     NewToolRenderer(styles, icons),
	}
}

// SetViewportWidth sets the width Wrap wraps to.
func (r *MessageRenderer) SetViewportWidth(width int) {
	r.viewportWidth = width
}

// Wrap fits content to the viewport width.
func (r *MessageRenderer) Wrap(content string) string {
	if r.viewportWidth > 0 {
		return lipgloss.NewStyle().Width(r.viewportWidth).Render(content)
	}
	return content
}

// RenderEntry renders one transcript entry.
func (r *MessageRenderer) RenderEntry(e chat.Entry) string {
	if strings.TrimSpace(e.Content) == "" {
		return ""
	}
	switch e.Role {
	case chat.RoleUser:
		return r.styles.User.Render("You:") + " " + e.Content
	case chat.RoleAssistant:
		return r.styles.Assistant.Render(agent.TravelPlannerName+":") + "\n" + r.renderMarkdown(e.Content)
	default:
		return r.styles.System.Render(e.Content)
	}
}

// RenderEvent renders a progress line for a run event. Events that carry
// nothing worth showing render as "".
func (r *MessageRenderer) RenderEvent(e agent.Event) string {
	switch e := e.(type) {
	case agent.AgentUpdated:
		return r.styles.Indent.Render(r.styles.System.Render(
			fmt.Sprintf("%s %s %s", e.AgentName, r.icons.Handoff, e.NewAgent)))
	case agent.ToolCalled:
		lines := make([]string, 0, len(e.Calls))
		for _, call := range e.Calls {
			lines = append(lines, r.toolRenderer.RenderCall(e.AgentName, call))
		}
		return r.styles.Indent.Render(strings.Join(lines, "\n"))
	case agent.ToolOutput:
		return r.styles.Indent.Render(r.toolRenderer.RenderResult(e))
	case agent.MessageOutput:
		// the planner's messages reach the transcript through the reply
		if e.AgentName == agent.TravelPlannerName {
			return ""
		}
		return r.styles.Indent.Render(r.styles.Agent.Render(e.AgentName+":") + " " + r.styles.Result.Render(Truncate(e.Text, 100)))
	default:
		return ""
	}
}

// RenderConfirmation renders a booking summary card.
func (r *MessageRenderer) RenderConfirmation(c *booking.BookingConfirmation) string {
	if c == nil {
		return ""
	}
	status := r.icons.Success
	if c.PaymentStatus != "success" {
		status = r.icons.Error
	}

	lines := []string{
		r.styles.Assistant.Render("Booking " + c.PaymentStatus + " " + status),
		fmt.Sprintf("%s  %s %s  %s", r.icons.Flight, c.SelectedFlight.FlightNo, c.SelectedFlight.Airline, c.SelectedFlight.Price.StringFixed(2)),
		fmt.Sprintf("%s  %s  %s/night  rated %.1f", r.icons.Hotel, c.SelectedHotel.HotelName, c.SelectedHotel.PricePerNight.StringFixed(2), c.SelectedHotel.Rating),
		fmt.Sprintf("%s  total %s  transaction %s", r.icons.Payment, c.TotalCost.StringFixed(2), c.TransactionID),
	}
	return r.styles.Confirmation.Render(strings.Join(lines, "\n"))
}

func (r *MessageRenderer) renderMarkdown(content string) string {
	if r.markdownRenderer == nil {
		return content
	}
	rendered, err := r.markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	// glamour pads with blank lines
	return strings.TrimSpace(rendered)
}
