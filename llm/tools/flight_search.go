package tools

import (
	"context"
	"fmt"

	"journeo/llm/booking"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"go.uber.org/zap"
)

// FlightSearchParams are the arguments of flight_search_tool.
type FlightSearchParams struct {
	Origin      string `json:"origin" jsonschema:"description=Departure city or airport"`
	Destination string `json:"destination" jsonschema:"description=Arrival city or airport"`
	Depart      string `json:"depart" jsonschema:"description=Departure date in YYYY-MM-DD format"`
	ReturnDate  string `json:"return_date" jsonschema:"description=Return date in YYYY-MM-DD format"`
}

const flightSearchDescription = `Search round-trip flights between two cities for the given dates.
Returns a list of flight options with flight_no, airline and price.`

// SearchFlights is the body of flight_search_tool. The search is simulated:
// the arguments are logged and the fixed catalog is returned.
func SearchFlights(log *zap.Logger) func(context.Context, FlightSearchParams) ([]booking.FlightOption, error) {
	return func(ctx context.Context, params FlightSearchParams) ([]booking.FlightOption, error) {
		log.Info("flight search",
			zap.String("tool", FlightSearchToolName),
			zap.String("origin", params.Origin),
			zap.String("destination", params.Destination),
			zap.String("depart", params.Depart),
			zap.String("return_date", params.ReturnDate),
		)
		return Flights(), nil
	}
}

// NewFlightSearchTool returns flight_search_tool.
func NewFlightSearchTool(log *zap.Logger) (tool.InvokableTool, error) {
	t, err := utils.InferTool(FlightSearchToolName, flightSearchDescription, SearchFlights(log))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", FlightSearchToolName, err)
	}
	return t, nil
}
