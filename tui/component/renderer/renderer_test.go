package renderer

import (
	"testing"
	"time"

	"journeo/chat"
	"journeo/llm/agent"
	"journeo/llm/booking"
	"journeo/llm/tools"

	"github.com/cloudwego/eino/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeFlights(t *testing.T) {
	assert.Equal(t, "5 flights, cheapest QT505 (QuickTrip) at 280.00", SummarizeFlights(tools.Flights()))
	assert.Equal(t, "no flights found", SummarizeFlights(nil))
}

func TestSummarizeHotels(t *testing.T) {
	assert.Equal(t, "5 hotels, cheapest Gamma Inn at 60.00/night (rated 3.9)", SummarizeHotels(tools.Hotels()))
	assert.Equal(t, "no hotels found", SummarizeHotels(nil))
}

func TestRenderResult(t *testing.T) {
	r := NewToolRenderer(nil, nil)

	payment := r.RenderResult(agent.ToolOutput{
		ToolName: tools.PaymentToolName,
		Output:   `{"status":"success","amount_charged":"340","transaction_id":"TXN123456"}`,
	})
	assert.Contains(t, payment, "payment success, 340.00 charged, transaction TXN123456")

	flights := r.RenderResult(agent.ToolOutput{
		ToolName: tools.FlightSearchToolName,
		Output:   `[{"flight_no":"AI101","airline":"AirExample","price":"350"}]`,
	})
	assert.Contains(t, flights, "1 flights, cheapest AI101")

	failed := r.RenderResult(agent.ToolOutput{ToolName: tools.HotelSearchToolName, Output: "Error: no city"})
	assert.Contains(t, failed, DefaultIcons().Error)

	other := r.RenderResult(agent.ToolOutput{ToolName: "transfer_to_agent", Output: "transferred"})
	assert.Contains(t, other, "transfer_to_agent: transferred")
}

func TestRenderEvent(t *testing.T) {
	r := NewMessageRenderer(nil)

	assert.Contains(t, r.RenderEvent(agent.AgentUpdated{AgentName: agent.TravelPlannerName, NewAgent: agent.HotelAgentName}), agent.HotelAgentName)
	assert.Contains(t, r.RenderEvent(agent.ToolCalled{AgentName: agent.FlightAgentName, Calls: []schema.ToolCall{{
		Function: schema.FunctionCall{Name: tools.FlightSearchToolName, Arguments: `{"origin":"Karachi"}`},
	}}}), tools.FlightSearchToolName)
	assert.Contains(t, r.RenderEvent(agent.MessageOutput{AgentName: agent.FlightAgentName, Text: "found 5"}), "found 5")

	assert.Empty(t, r.RenderEvent(agent.MessageOutput{AgentName: agent.TravelPlannerName, Text: "final"}))
	assert.Empty(t, r.RenderEvent(agent.RawResponse{}))
	assert.Empty(t, r.RenderEvent(agent.Unknown{Tag: "exit"}))
}

func TestRenderEntry(t *testing.T) {
	r := NewMessageRenderer(nil)

	assert.Contains(t, r.RenderEntry(chat.Entry{Role: chat.RoleUser, Content: "to Dubai"}), "to Dubai")
	assert.Contains(t, r.RenderEntry(chat.Entry{Role: chat.RoleAssistant, Content: "Booked"}), "Booked")
	assert.Empty(t, r.RenderEntry(chat.Entry{Role: chat.RoleUser, Content: " "}))
}

func TestRenderConfirmation(t *testing.T) {
	r := NewMessageRenderer(nil)
	assert.Empty(t, r.RenderConfirmation(nil))

	flight := booking.NewFlightOption("QT505", "QuickTrip", decimal.RequireFromString("280"))
	hotel := booking.NewHotelOption("Gamma Inn", decimal.RequireFromString("60"), 3.9)
	total := decimal.Zero
	conf, err := booking.NewBookingConfirmation(booking.ConfirmationInput{
		SelectedFlight: &flight,
		SelectedHotel:  &hotel,
		TotalCost:      &total,
		PaymentStatus:  "success",
		TransactionID:  "TXN123456",
	})
	require.NoError(t, err)

	card := r.RenderConfirmation(conf)
	for _, want := range []string{"QT505", "Gamma Inn", "340.00", "TXN123456"} {
		assert.Contains(t, card, want)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "a b", Truncate("a\nb", 10))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "3.2s", FormatDuration(3200*time.Millisecond))
	assert.Equal(t, "2.0m", FormatDuration(2*time.Minute))
}
