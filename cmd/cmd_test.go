package cmd

import (
	"bytes"
	"testing"

	"journeo/llm/agent"

	"github.com/stretchr/testify/assert"
)

func TestPromptFrom(t *testing.T) {
	assert.Equal(t, DefaultPrompt, promptFrom(nil))
	assert.Equal(t, DefaultPrompt, promptFrom([]string{"  "}))
	assert.Equal(t, "Lahore to Doha", promptFrom([]string{"Lahore", "to", "Doha"}))
}

func TestPrintReply(t *testing.T) {
	var out bytes.Buffer
	printReply(&out, agent.NewReply("no booking today"))
	assert.Equal(t, "no booking today\n", out.String())

	out.Reset()
	printReply(&out, agent.NewReply(`{"selected_flight": {"flight_no": "QT505", "airline": "QuickTrip", "price": 280},
		"selected_hotel": {"hotel_name": "Gamma Inn", "price_per_night": 60, "rating": 3.9},
		"payment_status": "success", "transaction_id": "TXN123456"}`))
	assert.Contains(t, out.String(), "Flight QT505 (QuickTrip) 280.00 + hotel Gamma Inn 60.00 = 340.00, payment success, transaction TXN123456")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "chat", "serve"} {
		assert.True(t, names[want], want)
	}
}
