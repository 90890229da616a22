// cmd/cardwallet/commands/cards.go
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cardwallet/internal/api/types"
	"cardwallet/internal/domain"
)

func cardsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Print the card collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd.Context(), io.Discard)
			if err != nil {
				return err
			}
			snap := application.CardService.Snapshot(cmd.Context())
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(types.NewCardCollectionResponse(snap))
			}

			fmt.Fprintf(out, "%d cards (%d active, %d disabled)\n", snap.Stats.Total, snap.Stats.Active, snap.Stats.Disabled)
			for _, c := range snap.Cards {
				fmt.Fprintln(out, formatCardLine(c))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the API response body")
	return cmd
}

func formatCardLine(c domain.Card) string {
	marker := " "
	if c.IsDefault {
		marker = "*"
	}
	status := "active"
	if !c.IsActive {
		status = "disabled"
	}
	return fmt.Sprintf("%s %s  %s  %s  %s  %s", marker, c.ID, c.MaskedNumber, c.Expiry(), c.CardholderName, status)
}
