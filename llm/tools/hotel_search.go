package tools

import (
	"context"
	"fmt"

	"journeo/llm/booking"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"go.uber.org/zap"
)

// HotelSearchParams are the arguments of hotel_search_tool.
type HotelSearchParams struct {
	City     string `json:"city" jsonschema:"description=City to search hotels in"`
	Checkin  string `json:"checkin" jsonschema:"description=Check-in date in YYYY-MM-DD format"`
	Checkout string `json:"checkout" jsonschema:"description=Check-out date in YYYY-MM-DD format"`
}

const hotelSearchDescription = `Search hotels in a city for a stay between checkin and checkout.
Returns a list of hotel options with hotel_name, price_per_night and rating.`

// SearchHotels is the body of hotel_search_tool; like SearchFlights it ignores
// its arguments apart from logging them.
func SearchHotels(log *zap.Logger) func(context.Context, HotelSearchParams) ([]booking.HotelOption, error) {
	return func(ctx context.Context, params HotelSearchParams) ([]booking.HotelOption, error) {
		log.Info("hotel search",
			zap.String("tool", HotelSearchToolName),
			zap.String("city", params.City),
			zap.String("checkin", params.Checkin),
			zap.String("checkout", params.Checkout),
		)
		return Hotels(), nil
	}
}

// NewHotelSearchTool returns hotel_search_tool.
func NewHotelSearchTool(log *zap.Logger) (tool.InvokableTool, error) {
	t, err := utils.InferTool(HotelSearchToolName, hotelSearchDescription, SearchHotels(log))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", HotelSearchToolName, err)
	}
	return t, nil
}
