package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abdidvp/theater/internal/domain"
)

// BatchRequest names the files a batch of statements is generated from.
type BatchRequest struct {
	InvoicesPath string
	PlaysPath    string
	ConfigPath   string
	// Customer restricts the batch to one customer's invoices when set.
	Customer string
}

// BatchService orchestrates statement generation from files:
// load config → load plays → load invoices → price each invoice.
type BatchService struct {
	invoices     domain.InvoiceSource
	plays        domain.PlaySource
	configLoader domain.ConfigLoader
	logger       *zap.Logger
}

// NewBatchService creates a BatchService over the given sources; a nil logger discards output.
func NewBatchService(
	invoices domain.InvoiceSource,
	plays domain.PlaySource,
	configLoader domain.ConfigLoader,
	logger *zap.Logger,
) *BatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{
		invoices:     invoices,
		plays:        plays,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Pricing returns the effective price list for the config at path.
func (s *BatchService) Pricing(configPath string) (domain.PricingConfig, error) {
	cfg, err := s.configLoader.Load(configPath)
	if err != nil {
		return domain.PricingConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg.EffectivePricing(), nil
}

// StatementService builds a StatementService for the config at path.
func (s *BatchService) StatementService(configPath string) (*StatementService, error) {
	p, err := s.Pricing(configPath)
	if err != nil {
		return nil, err
	}
	return NewStatementService(p, s.logger), nil
}

// Plays loads the play catalog.
func (s *BatchService) Plays(path string) (domain.Plays, error) {
	plays, err := s.plays.LoadPlays(path)
	if err != nil {
		return nil, fmt.Errorf("loading plays: %w", err)
	}
	return plays, nil
}

// Run prices every requested invoice. Statements keep file order and any
// failing invoice aborts the batch.
func (s *BatchService) Run(req BatchRequest) ([]*domain.Statement, error) {
	svc, err := s.StatementService(req.ConfigPath)
	if err != nil {
		return nil, err
	}

	plays, err := s.Plays(req.PlaysPath)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoices.LoadInvoices(req.InvoicesPath)
	if err != nil {
		return nil, fmt.Errorf("loading invoices: %w", err)
	}
	s.logger.Debug("inputs loaded",
		zap.Int("plays", len(plays)),
		zap.Int("invoices", len(invoices)),
	)

	var statements []*domain.Statement
	for _, inv := range invoices {
		if req.Customer != "" && inv.Customer != req.Customer {
			continue
		}
		stmt, err := svc.Build(inv, plays)
		if err != nil {
			return nil, fmt.Errorf("pricing invoice for %s: %w", inv.Customer, err)
		}
		statements = append(statements, stmt)
	}

	if req.Customer != "" && len(statements) == 0 {
		return nil, fmt.Errorf("no invoice for customer %q", req.Customer)
	}
	return statements, nil
}
