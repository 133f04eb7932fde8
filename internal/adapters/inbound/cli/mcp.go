package cli

import (
	mcpadapter "github.com/abdidvp/theater/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the theater MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(flags))
	return cmd
}

func newMCPServeCmd(flags *globalFlags) *cobra.Command {
	var playsPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start theater MCP server (stdio)",
		Long:  "Start the theater MCP server using stdio transport. This allows AI assistants to price invoices and quote performances.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewTheaterMCPServer(newBatchService(cmd, flags), mcpadapter.Options{
				PlaysPath:  playsPath,
				ConfigPath: flags.configPath,
			})
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&playsPath, "plays", "plays.json", "Default play catalog for theater_statement")

	return cmd
}
