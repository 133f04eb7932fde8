package pricing

import (
	"fmt"

	"github.com/abdidvp/theater/internal/domain"
)

// Calculator prices performances against a fixed price list.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	cfg     domain.PricingConfig
	tragedy tragedyRule
	comedy  comedyRule
}

// NewCalculator creates a Calculator for the given price list.
func NewCalculator(cfg domain.PricingConfig) *Calculator {
	return &Calculator{
		cfg:     cfg,
		tragedy: tragedyRule{cfg: cfg},
		comedy:  comedyRule{cfg: cfg},
	}
}

// RuleFor returns the pricing rule for a play type.
func (c *Calculator) RuleFor(t domain.PlayType) (Rule, error) {
	switch t {
	case domain.PlayTypeTragedy:
		return c.tragedy, nil
	case domain.PlayTypeComedy:
		return c.comedy, nil
	default:
		return nil, &domain.UnknownPlayTypeError{Type: t}
	}
}

// Amount returns the price of one performance in cents.
func (c *Calculator) Amount(perf domain.Performance, play domain.Play) (domain.Cents, error) {
	rule, err := c.RuleFor(play.Type)
	if err != nil {
		return 0, err
	}
	return rule.Amount(perf), nil
}

// VolumeCredits returns the loyalty credits earned by one performance.
// Only comedies earn extra credits; any other type, recognized or not,
// earns the base credits.
func (c *Calculator) VolumeCredits(perf domain.Performance, play domain.Play) int {
	if play.Type == domain.PlayTypeComedy {
		return c.comedy.VolumeCredits(perf)
	}
	return baseCredits(c.cfg, perf)
}

// TotalAmount sums the price of every performance on the invoice.
func (c *Calculator) TotalAmount(inv domain.Invoice, plays domain.Plays) (domain.Cents, error) {
	var total domain.Cents
	for _, perf := range inv.Performances {
		play, err := plays.Lookup(perf.PlayID)
		if err != nil {
			return 0, err
		}
		amount, err := c.Amount(perf, play)
		if err != nil {
			return 0, err
		}
		total += amount
	}
	return total, nil
}

// TotalVolumeCredits sums the credits of every performance on the invoice.
func (c *Calculator) TotalVolumeCredits(inv domain.Invoice, plays domain.Plays) (int, error) {
	total := 0
	for _, perf := range inv.Performances {
		play, err := plays.Lookup(perf.PlayID)
		if err != nil {
			return 0, err
		}
		total += c.VolumeCredits(perf, play)
	}
	return total, nil
}

// Price builds the full statement for an invoice. Lines keep invoice order and
// the first failing performance aborts the whole statement.
func (c *Calculator) Price(inv domain.Invoice, plays domain.Plays) (*domain.Statement, error) {
	stmt := &domain.Statement{
		Customer: inv.Customer,
		Lines:    make([]domain.StatementLine, 0, len(inv.Performances)),
	}

	for i, perf := range inv.Performances {
		play, err := plays.Lookup(perf.PlayID)
		if err != nil {
			return nil, fmt.Errorf("performance %d: %w", i+1, err)
		}
		rule, err := c.RuleFor(play.Type)
		if err != nil {
			return nil, fmt.Errorf("performance %d (%s): %w", i+1, perf.PlayID, err)
		}

		line := domain.StatementLine{
			PlayID:   perf.PlayID,
			PlayName: play.Name,
			PlayType: play.Type,
			Audience: perf.Audience,
			Amount:   rule.Amount(perf),
			Credits:  rule.VolumeCredits(perf),
		}
		stmt.Lines = append(stmt.Lines, line)
		stmt.TotalAmount += line.Amount
		stmt.TotalCredits += line.Credits
	}

	return stmt, nil
}

// Quote prices a single performance of the given play type.
func (c *Calculator) Quote(t domain.PlayType, audience int) (domain.Quote, error) {
	rule, err := c.RuleFor(t)
	if err != nil {
		return domain.Quote{}, err
	}
	perf := domain.Performance{Audience: audience}
	return domain.Quote{
		PlayType: t,
		Audience: audience,
		Amount:   rule.Amount(perf),
		Credits:  rule.VolumeCredits(perf),
	}, nil
}
