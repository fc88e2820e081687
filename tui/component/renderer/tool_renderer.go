package renderer

import (
	"encoding/json"
	"fmt"
	"strings"

	"journeo/llm/agent"
	"journeo/llm/booking"
	"journeo/llm/tools"

	"github.com/cloudwego/eino/schema"
)

// ToolRenderer turns tool calls and tool results into one-line summaries.
type ToolRenderer struct {
	styles *MessageStyles
	icons  *Icons
}

// NewToolRenderer creates a ToolRenderer. nil arguments select the defaults.
func NewToolRenderer(styles *MessageStyles, icons *Icons) *ToolRenderer {
	if styles == nil {
		styles = DefaultMessageStyles()
	}
	if icons == nil {
		icons = DefaultIcons()
	}
	return &ToolRenderer{styles: styles, icons: icons}
}

// RenderCall renders a tool call made by agentName.
func (r *ToolRenderer) RenderCall(agentName string, call schema.ToolCall) string {
	return r.styles.ToolBorder.Render("│ ") +
		r.icons.Tool + " " +
		r.styles.Agent.Render(agentName) + " " +
		r.styles.ToolName.Render(call.Function.Name) + " " +
		r.styles.Result.Render(Truncate(call.Function.Arguments, 80))
}

// RenderResult renders a tool result, summarising the known tools.
func (r *ToolRenderer) RenderResult(out agent.ToolOutput) string {
	icon, summary := r.summarize(out)
	return r.styles.ToolBorder.Render("│ ") + icon + " " + r.styles.Result.Render(summary)
}

func (r *ToolRenderer) summarize(out agent.ToolOutput) (string, string) {
	if strings.HasPrefix(out.Output, "Error:") {
		return r.icons.Error, Truncate(fmt.Sprintf("%s: %s", out.ToolName, out.Output), 100)
	}

	switch out.ToolName {
	case tools.FlightSearchToolName:
		if opts, err := booking.ParseFlightOptions([]byte(out.Output)); err == nil {
			return r.icons.Flight, SummarizeFlights(opts)
		}
	case tools.HotelSearchToolName:
		if opts, err := booking.ParseHotelOptions([]byte(out.Output)); err == nil {
			return r.icons.Hotel, SummarizeHotels(opts)
		}
	case tools.PaymentToolName:
		var res tools.PaymentResult
		if err := json.Unmarshal([]byte(out.Output), &res); err == nil {
			return r.icons.Payment, SummarizePayment(res)
		}
	}
	return r.icons.Tool, Truncate(fmt.Sprintf("%s: %s", out.ToolName, out.Output), 100)
}

// SummarizeFlights names the number of flights and the cheapest one.
func SummarizeFlights(opts []booking.FlightOption) string {
	if len(opts) == 0 {
		return "no flights found"
	}
	cheapest := opts[0]
	for _, o := range opts[1:] {
		if o.Price.LessThan(cheapest.Price) {
			cheapest = o
		}
	}
	return fmt.Sprintf("%d flights, cheapest %s (%s) at %s", len(opts), cheapest.FlightNo, cheapest.Airline, cheapest.Price.StringFixed(2))
}

// SummarizeHotels names the number of hotels and the cheapest one.
func SummarizeHotels(opts []booking.HotelOption) string {
	if len(opts) == 0 {
		return "no hotels found"
	}
	cheapest := opts[0]
	for _, o := range opts[1:] {
		if o.PricePerNight.LessThan(cheapest.PricePerNight) {
			cheapest = o
		}
	}
	return fmt.Sprintf("%d hotels, cheapest %s at %s/night (rated %.1f)", len(opts), cheapest.HotelName, cheapest.PricePerNight.StringFixed(2), cheapest.Rating)
}

// SummarizePayment renders the payment outcome.
func SummarizePayment(res tools.PaymentResult) string {
	return fmt.Sprintf("payment %s, %s charged, transaction %s", res.Status, res.AmountCharged.StringFixed(2), res.TransactionID)
}
