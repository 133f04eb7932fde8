package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/theater/internal/application"
)

const pricingURI = "theater://pricing"

// registerResources registers all theater MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.BatchService, opts Options) {
	s.AddResource(
		mcplib.NewResource(
			pricingURI,
			"Price List",
			mcplib.WithResourceDescription("Pricing constants in effect, money values in cents"),
			mcplib.WithMIMEType("application/json"),
		),
		handlePricingResource(svc, opts),
	)
}

func handlePricingResource(svc *application.BatchService, opts Options) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		p, err := svc.Pricing(opts.ConfigPath)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling pricing: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      pricingURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
