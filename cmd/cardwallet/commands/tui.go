// cmd/cardwallet/commands/tui.go
package commands

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cardwallet/internal/tui"
)

func tuiCmd() *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal card screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The alternate screen owns stdout, so logs go to a file or nowhere.
			var logOutput io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOutput = f
			}

			ctx := cmd.Context()
			application, err := newApplication(ctx, logOutput)
			if err != nil {
				return err
			}

			model := tui.NewAppModel(ctx, application.CardService, application.DashboardService)
			if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return application.Shutdown(ctx)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
