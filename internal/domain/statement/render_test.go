package statement_test

import (
	"strings"
	"testing"

	"github.com/abdidvp/theater/internal/domain"
	"github.com/abdidvp/theater/internal/domain/pricing"
	"github.com/abdidvp/theater/internal/domain/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BigCo(t *testing.T) {
	plays := domain.Plays{
		"hamlet":  {Name: "Hamlet", Type: domain.PlayTypeTragedy},
		"as-like": {Name: "As You Like It", Type: domain.PlayTypeComedy},
	}
	inv := domain.Invoice{
		Customer: "BigCo",
		Performances: []domain.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 35},
		},
	}

	stmt, err := pricing.NewCalculator(domain.DefaultPricing()).Price(inv, plays)
	require.NoError(t, err)

	want := "Statement for BigCo\n" +
		"  Hamlet: $650.00 (55 seats)\n" +
		"  As You Like It: $580.00 (35 seats)\n" +
		"Amount owed is $1,230.00\n" +
		"You earned 37 credits\n"
	assert.Equal(t, want, statement.Render(stmt))
}

func TestRender_KeepsLineOrder(t *testing.T) {
	stmt := &domain.Statement{
		Customer: "Acme",
		Lines: []domain.StatementLine{
			{PlayName: "Zeta", Amount: 100, Audience: 1},
			{PlayName: "Alpha", Amount: 200, Audience: 2},
		},
		TotalAmount:  300,
		TotalCredits: 0,
	}
	out := statement.Render(stmt)
	assert.Less(t, strings.Index(out, "Zeta"), strings.Index(out, "Alpha"))
	assert.Contains(t, out, "You earned 0 credits\n")
}

func TestRender_EmptyInvoice(t *testing.T) {
	out := statement.Render(&domain.Statement{Customer: "Nobody"})
	assert.Equal(t, "Statement for Nobody\nAmount owed is $0.00\nYou earned 0 credits\n", out)
}
