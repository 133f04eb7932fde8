package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteCommand(t *testing.T) {
	out, err := runCmd(t, "quote", "--type", "comedy", "--audience", "35", "--config", fixtureDir)
	require.NoError(t, err)
	assert.Equal(t, "comedy for 35 seats: $580.00, 12 credits\n", out)
}

func TestQuoteCommand_JSON(t *testing.T) {
	out, err := runCmd(t, "quote", "--type", "tragedy", "--audience", "55", "--config", fixtureDir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"amount": 65000`)
	assert.Contains(t, out, `"credits": 25`)
}

func TestQuoteCommand_UnknownType(t *testing.T) {
	_, err := runCmd(t, "quote", "--type", "opera", "--audience", "10", "--config", fixtureDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type: opera")
}

func TestQuoteCommand_RequiresType(t *testing.T) {
	_, err := runCmd(t, "quote", "--audience", "10")
	assert.Error(t, err)
}

func TestPricingCommand_Defaults(t *testing.T) {
	out, err := runCmd(t, "pricing", "--config", fixtureDir)
	require.NoError(t, err)
	assert.Contains(t, out, "tragedy_base_amount: 40000")
	assert.Contains(t, out, "comedy_extra_volume_factor: 5")
}

func TestPricingCommand_Overrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".theater.yaml"),
		[]byte("pricing:\n  comedy_base_amount: 31000\n"), 0644))

	out, err := runCmd(t, "pricing", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "comedy_base_amount: 31000")
	assert.Contains(t, out, "tragedy_base_amount: 40000")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "theater dev")
}
