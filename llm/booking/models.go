package booking

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// FlightOption is a single flight offer.
type FlightOption struct {
	FlightNo string          `json:"flight_no" jsonschema:"description=Flight number such as AI101"`
	Airline  string          `json:"airline" jsonschema:"description=Operating airline"`
	Price    decimal.Decimal `json:"price" jsonschema:"description=Ticket price"`
}

// HotelOption is a single hotel offer.
type HotelOption struct {
	HotelName     string          `json:"hotel_name" jsonschema:"description=Name of the hotel"`
	PricePerNight decimal.Decimal `json:"price_per_night" jsonschema:"description=Price for one night"`
	Rating        float64         `json:"rating" jsonschema:"description=Guest rating"`
}

// BookingConfirmation is the structured result of a completed booking.
// TotalCost is derived from the selected flight and hotel, see NewBookingConfirmation.
type BookingConfirmation struct {
	SelectedFlight FlightOption    `json:"selected_flight"`
	SelectedHotel  HotelOption     `json:"selected_hotel"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	PaymentStatus  string          `json:"payment_status"`
	TransactionID  string          `json:"transaction_id"`
}

// ConfirmationInput carries the raw fields a BookingConfirmation is built from.
// A nil pointer means the field was not supplied. Empty strings are valid
// values; presence of the string fields is checked when decoding JSON.
type ConfirmationInput struct {
	SelectedFlight *FlightOption    `json:"selected_flight" validate:"required"`
	SelectedHotel  *HotelOption     `json:"selected_hotel" validate:"required"`
	TotalCost      *decimal.Decimal `json:"total_cost" validate:"required"`
	PaymentStatus  string           `json:"payment_status"`
	TransactionID  string           `json:"transaction_id"`
}

// NewFlightOption builds a FlightOption from typed values.
func NewFlightOption(flightNo, airline string, price decimal.Decimal) FlightOption {
	return FlightOption{FlightNo: flightNo, Airline: airline, Price: price}
}

// NewHotelOption builds a HotelOption from typed values.
func NewHotelOption(name string, pricePerNight decimal.Decimal, rating float64) HotelOption {
	return HotelOption{HotelName: name, PricePerNight: pricePerNight, Rating: rating}
}

// ResolveTotalCost returns flight.Price + hotel.PricePerNight when both are
// present. Otherwise the supplied value is returned unchanged, nil included.
func ResolveTotalCost(flight *FlightOption, hotel *HotelOption, supplied *decimal.Decimal) *decimal.Decimal {
	if flight == nil || hotel == nil {
		return supplied
	}
	total := flight.Price.Add(hotel.PricePerNight)
	return &total
}

// NewBookingConfirmation resolves the total cost and validates the input.
// Any TotalCost in the input is ignored when both the flight and hotel are set.
func NewBookingConfirmation(in ConfirmationInput) (*BookingConfirmation, error) {
	in.TotalCost = ResolveTotalCost(in.SelectedFlight, in.SelectedHotel, in.TotalCost)
	if err := validate.Struct(in); err != nil {
		return nil, newValidationError("booking confirmation", err)
	}

	return &BookingConfirmation{
		SelectedFlight: *in.SelectedFlight,
		SelectedHotel:  *in.SelectedHotel,
		TotalCost:      *in.TotalCost,
		PaymentStatus:  in.PaymentStatus,
		TransactionID:  in.TransactionID,
	}, nil
}

// flightInput, hotelInput and confirmationInput mirror the public models with
// pointer fields so that an absent JSON key can be told apart from a zero value.
type flightInput struct {
	FlightNo *string          `json:"flight_no" validate:"required"`
	Airline  *string          `json:"airline" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
}

func (f *flightInput) option() *FlightOption {
	if f == nil {
		return nil
	}
	opt := NewFlightOption(*f.FlightNo, *f.Airline, *f.Price)
	return &opt
}

type hotelInput struct {
	HotelName     *string          `json:"hotel_name" validate:"required"`
	PricePerNight *decimal.Decimal `json:"price_per_night" validate:"required"`
	Rating        *float64         `json:"rating" validate:"required"`
}

func (h *hotelInput) option() *HotelOption {
	if h == nil {
		return nil
	}
	opt := NewHotelOption(*h.HotelName, *h.PricePerNight, *h.Rating)
	return &opt
}

type confirmationInput struct {
	SelectedFlight *flightInput     `json:"selected_flight" validate:"required"`
	SelectedHotel  *hotelInput      `json:"selected_hotel" validate:"required"`
	TotalCost      *decimal.Decimal `json:"total_cost"`
	PaymentStatus  *string          `json:"payment_status" validate:"required"`
	TransactionID  *string          `json:"transaction_id" validate:"required"`
}

// ParseFlightOption decodes and validates a FlightOption from JSON.
func ParseFlightOption(data []byte) (FlightOption, error) {
	var in flightInput
	if err := decode(data, &in, "flight option"); err != nil {
		return FlightOption{}, err
	}
	return *in.option(), nil
}

// ParseHotelOption decodes and validates a HotelOption from JSON.
func ParseHotelOption(data []byte) (HotelOption, error) {
	var in hotelInput
	if err := decode(data, &in, "hotel option"); err != nil {
		return HotelOption{}, err
	}
	return *in.option(), nil
}

// ParseFlightOptions decodes a JSON array of flight options.
func ParseFlightOptions(data []byte) ([]FlightOption, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Model: "flight options", err: err}
	}
	opts := make([]FlightOption, 0, len(raw))
	for i, item := range raw {
		opt, err := ParseFlightOption(item)
		if err != nil {
			return nil, fmt.Errorf("flight option %d: %w", i, err)
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// ParseHotelOptions decodes a JSON array of hotel options.
func ParseHotelOptions(data []byte) ([]HotelOption, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Model: "hotel options", err: err}
	}
	opts := make([]HotelOption, 0, len(raw))
	for i, item := range raw {
		opt, err := ParseHotelOption(item)
		if err != nil {
			return nil, fmt.Errorf("hotel option %d: %w", i, err)
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// ParseBookingConfirmation decodes a BookingConfirmation from JSON. The
// total_cost key is optional when both selected_flight and selected_hotel are
// present, because it is recomputed from them.
func ParseBookingConfirmation(data []byte) (*BookingConfirmation, error) {
	var in confirmationInput
	if err := decode(data, &in, "booking confirmation"); err != nil {
		return nil, err
	}

	return NewBookingConfirmation(ConfirmationInput{
		SelectedFlight: in.SelectedFlight.option(),
		SelectedHotel:  in.SelectedHotel.option(),
		TotalCost:      in.TotalCost,
		PaymentStatus:  *in.PaymentStatus,
		TransactionID:  *in.TransactionID,
	})
}

func decode(data []byte, v any, model string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &ValidationError{Model: model, err: err}
	}
	if err := validate.Struct(v); err != nil {
		return newValidationError(model, err)
	}
	return nil
}
