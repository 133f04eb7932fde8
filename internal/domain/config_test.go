package domain_test

import (
	"testing"

	"github.com/abdidvp/theater/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_ChangesNothing(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Nil(t, cfg.Pricing)
	assert.Equal(t, domain.DefaultPricing(), cfg.EffectivePricing())
}

func TestDefaultPricing_Values(t *testing.T) {
	p := domain.DefaultPricing()
	assert.Equal(t, domain.Cents(40000), p.TragedyBaseAmount)
	assert.Equal(t, 30, p.TragedyAudienceThreshold)
	assert.Equal(t, domain.Cents(1000), p.TragedyOverBaseCapacityPerPerson)
	assert.Equal(t, domain.Cents(30000), p.ComedyBaseAmount)
	assert.Equal(t, 20, p.ComedyAudienceThreshold)
	assert.Equal(t, domain.Cents(10000), p.ComedyOverBaseCapacityAmount)
	assert.Equal(t, domain.Cents(500), p.ComedyOverBaseCapacityPerPerson)
	assert.Equal(t, domain.Cents(300), p.ComedyAmountPerAudience)
	assert.Equal(t, 30, p.BaseVolumeCreditThreshold)
	assert.Equal(t, 5, p.ComedyExtraVolumeFactor)
	assert.NoError(t, p.Validate())
}

func TestEffectivePricing_OverridesOnlySetFields(t *testing.T) {
	base := domain.Cents(50000)
	factor := 10
	cfg := domain.ProjectConfig{Pricing: &domain.PricingOverrides{
		TragedyBaseAmount:       &base,
		ComedyExtraVolumeFactor: &factor,
	}}

	p := cfg.EffectivePricing()
	assert.Equal(t, domain.Cents(50000), p.TragedyBaseAmount)
	assert.Equal(t, 10, p.ComedyExtraVolumeFactor)
	assert.Equal(t, domain.DefaultPricing().ComedyBaseAmount, p.ComedyBaseAmount)
	assert.Equal(t, domain.DefaultPricing().TragedyAudienceThreshold, p.TragedyAudienceThreshold)
}

func TestEffectivePricing_ExplicitZeroWins(t *testing.T) {
	zero := 0
	cfg := domain.ProjectConfig{Pricing: &domain.PricingOverrides{BaseVolumeCreditThreshold: &zero}}
	assert.Equal(t, 0, cfg.EffectivePricing().BaseVolumeCreditThreshold)
}

func TestPricingValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.PricingConfig)
		wantErr string
	}{
		{"negative tragedy base", func(p *domain.PricingConfig) { p.TragedyBaseAmount = -1 }, "tragedy_base_amount"},
		{"negative comedy surcharge", func(p *domain.PricingConfig) { p.ComedyOverBaseCapacityAmount = -5 }, "comedy_over_base_capacity_amount"},
		{"negative threshold", func(p *domain.PricingConfig) { p.ComedyAudienceThreshold = -1 }, "comedy_audience_threshold"},
		{"zero volume factor", func(p *domain.PricingConfig) { p.ComedyExtraVolumeFactor = 0 }, "comedy_extra_volume_factor"},
		{"negative volume factor", func(p *domain.PricingConfig) { p.ComedyExtraVolumeFactor = -2 }, "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.DefaultPricing()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProjectConfigValidate_UsesEffectivePricing(t *testing.T) {
	zero := 0
	cfg := domain.ProjectConfig{Pricing: &domain.PricingOverrides{ComedyExtraVolumeFactor: &zero}}
	assert.Error(t, cfg.Validate())
	assert.NoError(t, domain.DefaultConfig().Validate())
}
