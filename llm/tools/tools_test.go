package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"journeo/llm/booking"
	"journeo/metrics"

	"github.com/cloudwego/eino/compose"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFlightSearchIgnoresInputs(t *testing.T) {
	ctx := context.Background()
	ft, err := NewFlightSearchTool(zap.NewNop())
	require.NoError(t, err)

	inputs := []string{
		`{"origin": "Karachi", "destination": "Dubai", "depart": "2025-08-15", "return_date": "2025-08-20"}`,
		`{"origin": "Lima", "destination": "Oslo", "depart": "2030-01-01", "return_date": "2030-02-01"}`,
		`{}`,
	}

	var first []booking.FlightOption
	for i, in := range inputs {
		out, err := ft.InvokableRun(ctx, in)
		require.NoError(t, err)

		flights, err := booking.ParseFlightOptions([]byte(out))
		require.NoError(t, err)
		require.Len(t, flights, 5)

		if i == 0 {
			first = flights
			continue
		}
		assert.Equal(t, flightNumbers(first), flightNumbers(flights))
	}

	assert.Equal(t, []string{"AI101", "EX202", "FL303", "SK404", "QT505"}, flightNumbers(first))
	assert.True(t, first[4].Price.Equal(decimal.RequireFromString("280")))
	assert.Equal(t, "QuickTrip", first[4].Airline)
}

func flightNumbers(opts []booking.FlightOption) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.FlightNo)
	}
	return out
}

func TestHotelSearchCatalog(t *testing.T) {
	hotels, err := SearchHotels(zap.NewNop())(context.Background(), HotelSearchParams{City: "Dubai"})
	require.NoError(t, err)
	require.Len(t, hotels, 5)
	assert.Equal(t, "Hotel Alpha", hotels[0].HotelName)
	assert.Equal(t, "Epsilon Lodge", hotels[4].HotelName)
	assert.True(t, hotels[2].PricePerNight.Equal(decimal.RequireFromString("60")))
	assert.InDelta(t, 5.0, hotels[3].Rating, 1e-9)

	again, err := SearchHotels(zap.NewNop())(context.Background(), HotelSearchParams{City: "Paris", Checkin: "x"})
	require.NoError(t, err)
	assert.Equal(t, hotels, again)
}

func TestCatalogReturnsCopies(t *testing.T) {
	flights := Flights()
	flights[0].Airline = "changed"
	assert.Equal(t, "AirExample", Flights()[0].Airline)
}

func TestPaymentIsDeterministic(t *testing.T) {
	ctx := context.Background()
	pt := NewPaymentTool(zap.NewNop())

	for _, in := range []string{
		`{"amount": 340, "card_last4": "1234"}`,
		`{"amount": "0.01", "card_last4": "0000"}`,
		`{"amount": 99999.99, "card_last4": "not-a-card"}`,
	} {
		out, err := pt.InvokableRun(ctx, in)
		require.NoError(t, err)

		var res struct {
			Status        string          `json:"status"`
			AmountCharged decimal.Decimal `json:"amount_charged"`
			TransactionID string          `json:"transaction_id"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "success", res.Status)
		assert.Equal(t, "TXN123456", res.TransactionID)
	}

	res, err := ProcessPayment(zap.NewNop())(ctx, PaymentParams{Amount: decimal.RequireFromString("340.00"), CardLast4: "1234"})
	require.NoError(t, err)
	assert.True(t, res.AmountCharged.Equal(decimal.RequireFromString("340")))
}

func TestToolInfo(t *testing.T) {
	ctx := context.Background()
	ts, err := NewToolset(zap.NewNop())
	require.NoError(t, err)

	cases := []struct {
		name   string
		params []string
	}{
		{FlightSearchToolName, []string{"origin", "destination", "depart", "return_date"}},
		{HotelSearchToolName, []string{"city", "checkin", "checkout"}},
		{PaymentToolName, []string{"amount", "card_last4"}},
	}

	all := ts.All()
	require.Len(t, all, len(cases))

	for i, bt := range all {
		info, err := bt.Info(ctx)
		require.NoError(t, err)
		assert.Equal(t, cases[i].name, info.Name)
		assert.NotEmpty(t, info.Desc)

		js, err := info.ParamsOneOf.ToJSONSchema()
		require.NoError(t, err)
		raw, err := json.Marshal(js)
		require.NoError(t, err)

		var s struct {
			Properties map[string]map[string]any `json:"properties"`
			Required   []string                  `json:"required"`
		}
		require.NoError(t, json.Unmarshal(raw, &s))
		for _, p := range cases[i].params {
			assert.Contains(t, s.Properties, p, "tool %s", info.Name)
			assert.Contains(t, s.Required, p, "tool %s", info.Name)
		}
	}
}

func TestMiddleware(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	mw := Middleware(zap.NewNop(), m)

	ok := mw.Invokable(func(ctx context.Context, in *compose.ToolInput) (*compose.ToolOutput, error) {
		return &compose.ToolOutput{Result: "[]"}, nil
	})
	out, err := ok(ctx, &compose.ToolInput{Name: FlightSearchToolName, Arguments: "{}"})
	require.NoError(t, err)
	assert.Equal(t, "[]", out.Result)

	failing := mw.Invokable(func(ctx context.Context, in *compose.ToolInput) (*compose.ToolOutput, error) {
		return nil, errors.New("[LocalFunc] failed to invoke tool, toolName=x, err=card declined")
	})
	out, err = failing(ctx, &compose.ToolInput{Name: PaymentToolName})
	require.NoError(t, err)
	assert.Equal(t, "Error: card declined", out.Result)

	interrupted := mw.Invokable(func(ctx context.Context, in *compose.ToolInput) (*compose.ToolOutput, error) {
		return nil, errors.New("interrupt signal")
	})
	_, err = interrupted(ctx, &compose.ToolInput{Name: PaymentToolName})
	require.Error(t, err)
}
