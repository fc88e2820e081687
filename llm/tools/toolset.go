package tools

import (
	"github.com/cloudwego/eino/components/tool"
	"go.uber.org/zap"
)

// Toolset groups the simulated tools, one per specialist agent.
type Toolset struct {
	FlightSearch tool.InvokableTool
	HotelSearch  tool.InvokableTool
	Payment      tool.InvokableTool
}

// NewToolset creates all simulated tools.
func NewToolset(log *zap.Logger) (*Toolset, error) {
	flight, err := NewFlightSearchTool(log)
	if err != nil {
		return nil, err
	}
	hotel, err := NewHotelSearchTool(log)
	if err != nil {
		return nil, err
	}

	return &Toolset{
		FlightSearch: flight,
		HotelSearch:  hotel,
		Payment:      NewPaymentTool(log),
	}, nil
}

// All returns the tools in flight, hotel, payment order.
func (t *Toolset) All() []tool.BaseTool {
	return []tool.BaseTool{t.FlightSearch, t.HotelSearch, t.Payment}
}
