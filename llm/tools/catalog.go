package tools

import (
	"journeo/llm/booking"

	"github.com/shopspring/decimal"
)

// Tool names exposed to the agents. The names are part of the calling
// convention and must not change.
const (
	FlightSearchToolName = "flight_search_tool"
	HotelSearchToolName  = "hotel_search_tool"
	PaymentToolName      = "process_payment_tool"
)

// TransactionID is the fixed id returned by every simulated payment.
const TransactionID = "TXN123456"

// PaymentSucceeded is the only status the simulated payment reports.
const PaymentSucceeded = "success"

// Flights returns the simulated flight catalog. Every call returns a fresh
// slice with the same five entries in the same order.
func Flights() []booking.FlightOption {
	return []booking.FlightOption{
		booking.NewFlightOption("AI101", "AirExample", decimal.RequireFromString("350.00")),
		booking.NewFlightOption("EX202", "ExampleAir", decimal.RequireFromString("420.00")),
		booking.NewFlightOption("FL303", "FlyHigh", decimal.RequireFromString("300.00")),
		booking.NewFlightOption("SK404", "SkyTravel", decimal.RequireFromString("500.00")),
		booking.NewFlightOption("QT505", "QuickTrip", decimal.RequireFromString("280.00")),
	}
}

// Hotels returns the simulated hotel catalog.
func Hotels() []booking.HotelOption {
	return []booking.HotelOption{
		booking.NewHotelOption("Hotel Alpha", decimal.RequireFromString("80.00"), 4.3),
		booking.NewHotelOption("Beta Suites", decimal.RequireFromString("120.00"), 4.7),
		booking.NewHotelOption("Gamma Inn", decimal.RequireFromString("60.00"), 3.9),
		booking.NewHotelOption("Delta Resort", decimal.RequireFromString("200.00"), 5.0),
		booking.NewHotelOption("Epsilon Lodge", decimal.RequireFromString("90.00"), 4.1),
	}
}
