package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/theater/internal/adapters/outbound/catalog"
	"github.com/abdidvp/theater/internal/application"
	"github.com/abdidvp/theater/internal/domain"
)

// registerTools registers all theater MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.BatchService, opts Options) {
	// 1. theater_statement
	s.AddTool(
		mcplib.NewTool("theater_statement",
			mcplib.WithDescription("Price an invoice and return the customer's billing statement as text"),
			mcplib.WithString("invoice",
				mcplib.Required(),
				mcplib.Description(`Invoice JSON: {"customer": "...", "performances": [{"playID": "...", "audience": 0}]}, or a list of them`),
			),
			mcplib.WithString("plays",
				mcplib.Description("Play catalog JSON keyed by play ID (defaults to the server's catalog file)"),
			),
		),
		handleStatement(svc, opts),
	)

	// 2. theater_quote
	s.AddTool(
		mcplib.NewTool("theater_quote",
			mcplib.WithDescription("Return the amount in cents and volume credits for a single performance as JSON"),
			mcplib.WithString("play_type",
				mcplib.Required(),
				mcplib.Description("Play type: tragedy or comedy"),
			),
			mcplib.WithNumber("audience",
				mcplib.Required(),
				mcplib.Description("Audience size"),
			),
		),
		handleQuote(svc, opts),
	)
}

func handleStatement(svc *application.BatchService, opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("invoice")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		invoices, err := catalog.DecodeInvoices([]byte(raw), catalog.FormatJSON)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing invoice: %v", err)), nil
		}

		rawPlays, _ := request.GetArguments()["plays"].(string)
		plays, err := resolvePlays(svc, opts, rawPlays)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		stmtSvc, err := svc.StatementService(opts.ConfigPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		texts := make([]string, 0, len(invoices))
		for _, inv := range invoices {
			text, err := stmtSvc.Statement(inv, plays)
			if err != nil {
				return errorResult(fmt.Sprintf("statement failed: %v", err)), nil
			}
			texts = append(texts, text)
		}
		return textResult(strings.Join(texts, "\n")), nil
	}
}

func handleQuote(svc *application.BatchService, opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		playType, err := request.RequireString("play_type")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		audience, err := request.RequireInt("audience")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		stmtSvc, err := svc.StatementService(opts.ConfigPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		q, err := stmtSvc.Quote(domain.PlayType(playType), audience)
		if err != nil {
			return errorResult(fmt.Sprintf("quote failed: %v", err)), nil
		}
		return jsonResult(q)
	}
}

func resolvePlays(svc *application.BatchService, opts Options, raw string) (domain.Plays, error) {
	if raw != "" {
		plays, err := catalog.DecodePlays([]byte(raw), catalog.FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("parsing plays: %w", err)
		}
		return plays, nil
	}
	if opts.PlaysPath == "" {
		return nil, errors.New("no plays given and no catalog configured")
	}
	return svc.Plays(opts.PlaysPath)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
