package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abdidvp/theater/internal/adapters/outbound/catalog"
	"github.com/abdidvp/theater/internal/adapters/outbound/config"
	"github.com/abdidvp/theater/internal/application"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "theater",
		Short:         "Price theater invoices and print customer statements",
		Long:          "theater prices each performance on a customer's invoice, totals volume credits and prints the billing statement.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", ".", "Config file, or directory containing "+config.FileName)
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log pricing details to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStatementCmd(flags))
	cmd.AddCommand(newQuoteCmd(flags))
	cmd.AddCommand(newPricingCmd(flags))
	cmd.AddCommand(newMCPCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newLogger returns a development logger on the command's stderr when
// verbose output is requested, and a no-op logger otherwise.
func newLogger(cmd *cobra.Command, flags *globalFlags) *zap.Logger {
	if !flags.verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func newBatchService(cmd *cobra.Command, flags *globalFlags) *application.BatchService {
	loader := catalog.New()
	return application.NewBatchService(loader, loader, config.New(), newLogger(cmd, flags))
}
