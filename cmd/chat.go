package cmd

import (
	"journeo/app"
	"journeo/tui/chat"

	"github.com/spf13/cobra"
)

const defaultTUILogFile = "journeo.log"

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive chat",
	Long:  `Opens a terminal chat with the travel planner. Logs go to a file so the screen stays clean.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, _ := cmd.Flags().GetString("log-file")

		cfg, log, err := setup(logFile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		a, err := app.New(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		return chat.Run(ctx, a.Chat, a.Events)
	},
}

func init() {
	chatCmd.Flags().String("log-file", defaultTUILogFile, "file the chat writes its logs to")
}
