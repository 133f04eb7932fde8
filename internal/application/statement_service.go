package application

import (
	"go.uber.org/zap"

	"github.com/abdidvp/theater/internal/domain"
	"github.com/abdidvp/theater/internal/domain/pricing"
	"github.com/abdidvp/theater/internal/domain/statement"
)

// StatementService prices invoices and renders their statements.
// It keeps no per-call state, so one instance may serve concurrent callers.
type StatementService struct {
	calc   *pricing.Calculator
	logger *zap.Logger
}

// NewStatementService creates a StatementService for the given price list; a nil logger discards output.
func NewStatementService(cfg domain.PricingConfig, logger *zap.Logger) *StatementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatementService{
		calc:   pricing.NewCalculator(cfg),
		logger: logger,
	}
}

// Build prices every performance of the invoice, in invoice order.
func (s *StatementService) Build(inv domain.Invoice, plays domain.Plays) (*domain.Statement, error) {
	stmt, err := s.calc.Price(inv, plays)
	if err != nil {
		s.logger.Debug("pricing failed",
			zap.String("customer", inv.Customer),
			zap.Error(err),
		)
		return nil, err
	}

	for _, line := range stmt.Lines {
		s.logger.Debug("performance priced",
			zap.String("customer", stmt.Customer),
			zap.String("play_id", line.PlayID),
			zap.String("play_type", string(line.PlayType)),
			zap.Int("audience", line.Audience),
			zap.Int64("amount_cents", int64(line.Amount)),
			zap.Int("credits", line.Credits),
		)
	}
	s.logger.Info("statement priced",
		zap.String("customer", stmt.Customer),
		zap.Int("performances", len(stmt.Lines)),
		zap.Int64("total_cents", int64(stmt.TotalAmount)),
		zap.Int("credits", stmt.TotalCredits),
	)
	return stmt, nil
}

// Statement returns the plain-text statement for the invoice.
func (s *StatementService) Statement(inv domain.Invoice, plays domain.Plays) (string, error) {
	stmt, err := s.Build(inv, plays)
	if err != nil {
		return "", err
	}
	return statement.Render(stmt), nil
}

// Quote prices a single performance of the given play type.
func (s *StatementService) Quote(t domain.PlayType, audience int) (domain.Quote, error) {
	return s.calc.Quote(t, audience)
}
