package mcp

import (
	"context"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/theater/internal/adapters/outbound/catalog"
	"github.com/abdidvp/theater/internal/adapters/outbound/config"
	"github.com/abdidvp/theater/internal/application"
)

const fixtureDir = "../../../../testdata/theater"

const bigCoInvoice = `{"customer": "BigCo", "performances": [
	{"playID": "hamlet", "audience": 55},
	{"playID": "as-like", "audience": 35}
]}`

func testService() *application.BatchService {
	loader := catalog.New()
	return application.NewBatchService(loader, loader, config.New(), nil)
}

func testOptions() Options {
	return Options{
		PlaysPath:  filepath.Join(fixtureDir, "plays.json"),
		ConfigPath: fixtureDir,
	}
}

func callTool(t *testing.T, handler func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleStatement_UsesServerCatalog(t *testing.T) {
	result := callTool(t, handleStatement(testService(), testOptions()), map[string]any{
		"invoice": bigCoInvoice,
	})
	assert.False(t, result.IsError)
	assert.Equal(t, "Statement for BigCo\n"+
		"  Hamlet: $650.00 (55 seats)\n"+
		"  As You Like It: $580.00 (35 seats)\n"+
		"Amount owed is $1,230.00\n"+
		"You earned 37 credits\n", resultText(t, result))
}

func TestHandleStatement_InlinePlays(t *testing.T) {
	result := callTool(t, handleStatement(testService(), Options{ConfigPath: fixtureDir}), map[string]any{
		"invoice": `{"customer": "Solo", "performances": [{"playID": "lear", "audience": 31}]}`,
		"plays":   `{"lear": {"name": "King Lear", "type": "tragedy"}}`,
	})
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "King Lear: $410.00 (31 seats)")
}

func TestHandleStatement_UnknownPlay(t *testing.T) {
	result := callTool(t, handleStatement(testService(), testOptions()), map[string]any{
		"invoice": `{"customer": "BigCo", "performances": [{"playID": "macbeth", "audience": 10}]}`,
	})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "play not found: macbeth")
}

func TestHandleStatement_MissingInvoice(t *testing.T) {
	result := callTool(t, handleStatement(testService(), testOptions()), map[string]any{})
	assert.True(t, result.IsError)
}

func TestHandleStatement_NoCatalog(t *testing.T) {
	result := callTool(t, handleStatement(testService(), Options{ConfigPath: fixtureDir}), map[string]any{
		"invoice": bigCoInvoice,
	})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "no plays given")
}

func TestHandleQuote(t *testing.T) {
	result := callTool(t, handleQuote(testService(), testOptions()), map[string]any{
		"play_type": "comedy",
		"audience":  float64(35),
	})
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, `"amount": 58000`)
	assert.Contains(t, text, `"credits": 12`)
}

func TestHandleQuote_UnknownType(t *testing.T) {
	result := callTool(t, handleQuote(testService(), testOptions()), map[string]any{
		"play_type": "opera",
		"audience":  float64(10),
	})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unknown type: opera")
}

func TestHandlePricingResource(t *testing.T) {
	contents, err := handlePricingResource(testService(), testOptions())(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, pricingURI, text.URI)
	assert.Contains(t, text.Text, `"tragedy_base_amount": 40000`)
}
