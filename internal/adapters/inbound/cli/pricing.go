package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPricingCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pricing",
		Short: "Show the effective price list",
		Long:  "Print the pricing constants in effect after applying config overrides, as YAML. Money values are in cents.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newBatchService(cmd, flags).Pricing(flags.configPath)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(p); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
