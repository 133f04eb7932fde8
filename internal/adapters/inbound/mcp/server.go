package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/theater/internal/application"
)

// Options locate the data the MCP server prices against.
type Options struct {
	// PlaysPath is the default play catalog for theater_statement.
	PlaysPath  string
	ConfigPath string
}

// NewTheaterMCPServer creates a new MCP server with all theater tools and
// resources registered.
func NewTheaterMCPServer(svc *application.BatchService, opts Options) *server.MCPServer {
	s := server.NewMCPServer(
		"theater",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc, opts)
	registerResources(s, svc, opts)

	return s
}
