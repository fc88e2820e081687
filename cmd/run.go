package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"journeo/app"
	"journeo/llm/agent"

	"github.com/cloudwego/eino-examples/adk/common/prints"
	"github.com/cloudwego/eino/adk"
	"github.com/spf13/cobra"
)

// DefaultPrompt is used when run is given no prompt.
const DefaultPrompt = "I want to book a trip from Karachi to Dubai departing 2025-08-15 and returning 2025-08-20."

var runCmd = &cobra.Command{
	Use:   "run [prompt]",
	Short: "Run one booking request and print the result",
	Long:  `Sends a single prompt to the travel planner and prints the last message it produced.`,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		cfg, log, err := setup("")
		if err != nil {
			return err
		}

		var opts []agent.Option
		if verbose {
			opts = append(opts, agent.WithEventHook(func(ev *adk.AgentEvent) {
				prints.Event(ev)
			}))
		}

		ctx := cmd.Context()
		a, err := app.New(ctx, cfg, log, opts...)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		reply, err := a.Runtime.Run(ctx, promptFrom(args))
		if err != nil {
			return fmt.Errorf("run failed: %w", err)
		}
		if reply == nil {
			return errors.New("the agents produced no message")
		}

		printReply(cmd.OutOrStdout(), reply)
		return nil
	},
}

func init() {
	runCmd.Flags().BoolP("verbose", "v", false, "print every agent event")
}

func promptFrom(args []string) string {
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		return DefaultPrompt
	}
	return prompt
}

func printReply(out io.Writer, reply *agent.Reply) {
	fmt.Fprintln(out, reply.Text)

	c := reply.Confirmation
	if c == nil {
		return
	}
	fmt.Fprintf(out, "\nFlight %s (%s) %s + hotel %s %s = %s, payment %s, transaction %s\n",
		c.SelectedFlight.FlightNo, c.SelectedFlight.Airline, c.SelectedFlight.Price.StringFixed(2),
		c.SelectedHotel.HotelName, c.SelectedHotel.PricePerNight.StringFixed(2),
		c.TotalCost.StringFixed(2), c.PaymentStatus, c.TransactionID)
}
