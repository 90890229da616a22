// cmd/cardwallet/commands/root.go
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	app "cardwallet/internal"
)

var configPath string

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cardwallet",
		Short:         "Payment card wallet",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $CONFIG_FILE)")

	root.AddCommand(serveCmd(), tuiCmd(), cardsCmd())
	return root
}

// newApplication initializes the application with logs written to logOutput.
func newApplication(ctx context.Context, logOutput io.Writer) (*app.Application, error) {
	application := app.NewApplication()
	application.ConfigPath = configPath
	application.LogOutput = logOutput
	if err := application.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize application: %w", err)
	}
	return application, nil
}
