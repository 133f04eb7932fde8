package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/theater/internal/adapters/outbound/tui"
	"github.com/abdidvp/theater/internal/application"
	"github.com/abdidvp/theater/internal/domain"
	"github.com/abdidvp/theater/internal/domain/statement"
)

func newStatementCmd(flags *globalFlags) *cobra.Command {
	var (
		invoicesPath string
		playsPath    string
		customer     string
		jsonOutput   bool
		pretty       bool
	)

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print billing statements for invoices",
		Long:  "Price every invoice in the invoices file against the play catalog and print one statement per invoice, in file order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput && pretty {
				return errors.New("--json and --pretty are mutually exclusive")
			}

			svc := newBatchService(cmd, flags)
			statements, err := svc.Run(application.BatchRequest{
				InvoicesPath: invoicesPath,
				PlaysPath:    playsPath,
				ConfigPath:   flags.configPath,
				Customer:     customer,
			})
			if err != nil {
				return fmt.Errorf("statement failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, statements)
			}
			for i, stmt := range statements {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprint(cmd.OutOrStdout(), renderText(stmt, pretty))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&invoicesPath, "invoices", "invoices.json", "Invoices file (JSON or YAML)")
	cmd.Flags().StringVar(&playsPath, "plays", "plays.json", "Play catalog file (JSON or YAML)")
	cmd.Flags().StringVar(&customer, "customer", "", "Only print the statement for this customer")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output priced statements as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Styled terminal output")

	return cmd
}

func renderText(stmt *domain.Statement, pretty bool) string {
	if pretty {
		return tui.RenderStatement(stmt)
	}
	return statement.Render(stmt)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
