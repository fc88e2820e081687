package agent

import (
	"context"
	"errors"
	"fmt"

	"journeo/llm/booking"
	"journeo/llm/tools"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
)

const (
	TravelPlannerName = "TravelPlanner"
	FlightAgentName   = "FlightAgent"
	HotelAgentName    = "HotelAgent"
	PaymentAgentName  = "PaymentAgent"

	// DefaultCardLast4 is the card the planner charges.
	DefaultCardLast4 = "1234"
)

const flightPrompt = `You are a flight search specialist. Use the %s to return a list of flights.

Reply with JSON only, matching this schema:
%s

When you are done, transfer back to %s.`

const hotelPrompt = `You are a hotel search specialist. Use the %s to return a list of hotels.

Reply with JSON only, matching this schema:
%s

When you are done, transfer back to %s.`

const paymentPrompt = `You are a payment specialist. Use %s to charge the customer.

Reply with the tool result as JSON: status, amount_charged and transaction_id.

When you are done, transfer back to %s.`

// TravelPlannerPrompt drives the orchestrator. The specialist names and the
// confirmation schema are filled in by NewTeam.
const TravelPlannerPrompt = `You are a travel planner. You never search or pay yourself: every step is done by
transferring to the specialist that owns the tool.

Follow these steps in order:
1) Transfer to %[1]s to search flights for the origin, destination, departure date and return date.
2) Present the cheapest flight as selected_flight.
3) Transfer to %[2]s to search hotels in the destination city for the same dates.
4) Present the cheapest hotel as selected_hotel.
5) Transfer to %[3]s to make the payment for the sum of the flight price and the hotel price per night, with card_last4='%[4]s'.
6) Return the full booking confirmation as JSON matching this schema:
%[5]s

Use the transaction_id and status returned by the payment. Output only the JSON in the last step.`

// Models holds one chat model per agent.
type Models struct {
	Flight       model.ToolCallingChatModel
	Hotel        model.ToolCallingChatModel
	Payment      model.ToolCallingChatModel
	Orchestrator model.ToolCallingChatModel
}

// TeamConfig holds dependencies for the travel team.
type TeamConfig struct {
	Models        Models
	Tools         *tools.Toolset
	Middlewares   []compose.ToolMiddleware
	MaxIterations int
}

// Team is the orchestrator together with its specialists. Orchestrator is the
// entry point; the specialists are registered as its sub-agents.
type Team struct {
	Orchestrator adk.Agent
	Flight       adk.Agent
	Hotel        adk.Agent
	Payment      adk.Agent
}

// NewTeam creates the four agents and wires the handoffs between them.
func NewTeam(ctx context.Context, config *TeamConfig) (*Team, error) {
	if config == nil {
		return nil, errors.New("config is nil")
	}
	if config.Tools == nil {
		return nil, errors.New("toolset is nil")
	}
	m := config.Models
	if m.Flight == nil || m.Hotel == nil || m.Payment == nil || m.Orchestrator == nil {
		return nil, errors.New("every agent needs a chat model")
	}

	flight, err := newSpecialist(ctx, config, specialist{
		name:        FlightAgentName,
		description: "Searches flights for a route and dates.",
		instruction: fmt.Sprintf(flightPrompt, tools.FlightSearchToolName, booking.SchemaFor([]booking.FlightOption{}), TravelPlannerName),
		model:       m.Flight,
		tool:        config.Tools.FlightSearch,
	})
	if err != nil {
		return nil, err
	}

	hotel, err := newSpecialist(ctx, config, specialist{
		name:        HotelAgentName,
		description: "Searches hotels in a city for a date range.",
		instruction: fmt.Sprintf(hotelPrompt, tools.HotelSearchToolName, booking.SchemaFor([]booking.HotelOption{}), TravelPlannerName),
		model:       m.Hotel,
		tool:        config.Tools.HotelSearch,
	})
	if err != nil {
		return nil, err
	}

	payment, err := newSpecialist(ctx, config, specialist{
		name:        PaymentAgentName,
		description: "Charges the customer's card for a booking.",
		instruction: fmt.Sprintf(paymentPrompt, tools.PaymentToolName, TravelPlannerName),
		model:       m.Payment,
		tool:        config.Tools.Payment,
	})
	if err != nil {
		return nil, err
	}

	planner, err := adk.NewChatModelAgent(ctx, &adk.ChatModelAgentConfig{
		Name:          TravelPlannerName,
		Description:   "Plans a trip by delegating to the flight, hotel and payment agents.",
		Instruction:   plannerInstruction(),
		Model:         m.Orchestrator,
		MaxIterations: config.MaxIterations,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", TravelPlannerName, err)
	}

	orchestrator, err := adk.SetSubAgents(ctx, planner, []adk.Agent{flight, hotel, payment})
	if err != nil {
		return nil, fmt.Errorf("register sub-agents: %w", err)
	}

	return &Team{
		Orchestrator: orchestrator,
		Flight:       flight,
		Hotel:        hotel,
		Payment:      payment,
	}, nil
}

func plannerInstruction() string {
	return fmt.Sprintf(TravelPlannerPrompt,
		FlightAgentName, HotelAgentName, PaymentAgentName, DefaultCardLast4,
		booking.SchemaFor(&booking.BookingConfirmation{}))
}

type specialist struct {
	name        string
	description string
	instruction string
	model       model.ToolCallingChatModel
	tool        tool.BaseTool
}

func newSpecialist(ctx context.Context, config *TeamConfig, s specialist) (adk.Agent, error) {
	if s.tool == nil {
		return nil, fmt.Errorf("%s: tool is nil", s.name)
	}

	agent, err := adk.NewChatModelAgent(ctx, &adk.ChatModelAgentConfig{
		Name:        s.name,
		Description: s.description,
		Instruction: s.instruction,
		Model:       s.model,
		ToolsConfig: adk.ToolsConfig{
			ToolsNodeConfig: compose.ToolsNodeConfig{
				Tools:               []tool.BaseTool{s.tool},
				ToolCallMiddlewares: config.Middlewares,
			},
		},
		MaxIterations: config.MaxIterations,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.name, err)
	}
	return agent, nil
}
