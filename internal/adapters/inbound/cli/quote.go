package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/theater/internal/domain"
	"github.com/abdidvp/theater/internal/domain/currency"
)

func newQuoteCmd(flags *globalFlags) *cobra.Command {
	var (
		playType   string
		audience   int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a single performance",
		Long:  "Compute the amount and volume credits for one performance of a tragedy or comedy.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newBatchService(cmd, flags).StatementService(flags.configPath)
			if err != nil {
				return err
			}

			q, err := svc.Quote(domain.PlayType(playType), audience)
			if err != nil {
				return fmt.Errorf("quote failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, q)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s for %d seats: %s, %d credits\n",
				q.PlayType, q.Audience, currency.FormatUSD(q.Amount), q.Credits)
			return nil
		},
	}

	cmd.Flags().StringVar(&playType, "type", "", "Play type (tragedy or comedy)")
	cmd.Flags().IntVar(&audience, "audience", 0, "Audience size")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output quote as JSON")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
