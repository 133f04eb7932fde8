package domain

import "fmt"

// PricingConfig holds every constant the pricing rules depend on.
// Money values are in cents.
type PricingConfig struct {
	TragedyBaseAmount                Cents `yaml:"tragedy_base_amount"                  json:"tragedy_base_amount"`
	TragedyAudienceThreshold         int   `yaml:"tragedy_audience_threshold"           json:"tragedy_audience_threshold"`
	TragedyOverBaseCapacityPerPerson Cents `yaml:"tragedy_over_base_capacity_per_person" json:"tragedy_over_base_capacity_per_person"`
	ComedyBaseAmount                 Cents `yaml:"comedy_base_amount"                   json:"comedy_base_amount"`
	ComedyAudienceThreshold          int   `yaml:"comedy_audience_threshold"            json:"comedy_audience_threshold"`
	ComedyOverBaseCapacityAmount     Cents `yaml:"comedy_over_base_capacity_amount"     json:"comedy_over_base_capacity_amount"`
	ComedyOverBaseCapacityPerPerson  Cents `yaml:"comedy_over_base_capacity_per_person" json:"comedy_over_base_capacity_per_person"`
	ComedyAmountPerAudience          Cents `yaml:"comedy_amount_per_audience"           json:"comedy_amount_per_audience"`
	BaseVolumeCreditThreshold        int   `yaml:"base_volume_credit_threshold"         json:"base_volume_credit_threshold"`
	ComedyExtraVolumeFactor          int   `yaml:"comedy_extra_volume_factor"           json:"comedy_extra_volume_factor"`
}

// DefaultPricing returns the standard price list.
func DefaultPricing() PricingConfig {
	return PricingConfig{
		TragedyBaseAmount:                40000,
		TragedyAudienceThreshold:         30,
		TragedyOverBaseCapacityPerPerson: 1000,
		ComedyBaseAmount:                 30000,
		ComedyAudienceThreshold:          20,
		ComedyOverBaseCapacityAmount:     10000,
		ComedyOverBaseCapacityPerPerson:  500,
		ComedyAmountPerAudience:          300,
		BaseVolumeCreditThreshold:        30,
		ComedyExtraVolumeFactor:          5,
	}
}

// Validate checks the price list for values the rules cannot work with.
func (c PricingConfig) Validate() error {
	amounts := []struct {
		name  string
		value Cents
	}{
		{"tragedy_base_amount", c.TragedyBaseAmount},
		{"tragedy_over_base_capacity_per_person", c.TragedyOverBaseCapacityPerPerson},
		{"comedy_base_amount", c.ComedyBaseAmount},
		{"comedy_over_base_capacity_amount", c.ComedyOverBaseCapacityAmount},
		{"comedy_over_base_capacity_per_person", c.ComedyOverBaseCapacityPerPerson},
		{"comedy_amount_per_audience", c.ComedyAmountPerAudience},
	}
	for _, a := range amounts {
		if a.value < 0 {
			return fmt.Errorf("%s = %d (must not be negative)", a.name, a.value)
		}
	}

	thresholds := []struct {
		name  string
		value int
	}{
		{"tragedy_audience_threshold", c.TragedyAudienceThreshold},
		{"comedy_audience_threshold", c.ComedyAudienceThreshold},
		{"base_volume_credit_threshold", c.BaseVolumeCreditThreshold},
	}
	for _, th := range thresholds {
		if th.value < 0 {
			return fmt.Errorf("%s = %d (must not be negative)", th.name, th.value)
		}
	}

	if c.ComedyExtraVolumeFactor <= 0 {
		return fmt.Errorf("comedy_extra_volume_factor = %d (must be positive)", c.ComedyExtraVolumeFactor)
	}
	return nil
}

// ProjectConfig holds configuration loaded from .theater.yaml.
type ProjectConfig struct {
	Pricing *PricingOverrides `yaml:"pricing,omitempty" json:"pricing,omitempty"`
}

// PricingOverrides replaces individual price list entries.
// Pointer types distinguish "not specified" from zero values.
type PricingOverrides struct {
	TragedyBaseAmount                *Cents `yaml:"tragedy_base_amount,omitempty"                   json:"tragedy_base_amount,omitempty"`
	TragedyAudienceThreshold         *int   `yaml:"tragedy_audience_threshold,omitempty"            json:"tragedy_audience_threshold,omitempty"`
	TragedyOverBaseCapacityPerPerson *Cents `yaml:"tragedy_over_base_capacity_per_person,omitempty" json:"tragedy_over_base_capacity_per_person,omitempty"`
	ComedyBaseAmount                 *Cents `yaml:"comedy_base_amount,omitempty"                    json:"comedy_base_amount,omitempty"`
	ComedyAudienceThreshold          *int   `yaml:"comedy_audience_threshold,omitempty"             json:"comedy_audience_threshold,omitempty"`
	ComedyOverBaseCapacityAmount     *Cents `yaml:"comedy_over_base_capacity_amount,omitempty"      json:"comedy_over_base_capacity_amount,omitempty"`
	ComedyOverBaseCapacityPerPerson  *Cents `yaml:"comedy_over_base_capacity_per_person,omitempty"  json:"comedy_over_base_capacity_per_person,omitempty"`
	ComedyAmountPerAudience          *Cents `yaml:"comedy_amount_per_audience,omitempty"            json:"comedy_amount_per_audience,omitempty"`
	BaseVolumeCreditThreshold        *int   `yaml:"base_volume_credit_threshold,omitempty"          json:"base_volume_credit_threshold,omitempty"`
	ComedyExtraVolumeFactor          *int   `yaml:"comedy_extra_volume_factor,omitempty"            json:"comedy_extra_volume_factor,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// EffectivePricing overlays the configured overrides on the default price list.
func (c ProjectConfig) EffectivePricing() PricingConfig {
	base := DefaultPricing()
	if c.Pricing == nil {
		return base
	}
	return c.Pricing.apply(base)
}

// Validate checks that the effective price list is usable.
func (c ProjectConfig) Validate() error {
	return c.EffectivePricing().Validate()
}

func (o PricingOverrides) apply(base PricingConfig) PricingConfig {
	result := base
	setCents(&result.TragedyBaseAmount, o.TragedyBaseAmount)
	setInt(&result.TragedyAudienceThreshold, o.TragedyAudienceThreshold)
	setCents(&result.TragedyOverBaseCapacityPerPerson, o.TragedyOverBaseCapacityPerPerson)
	setCents(&result.ComedyBaseAmount, o.ComedyBaseAmount)
	setInt(&result.ComedyAudienceThreshold, o.ComedyAudienceThreshold)
	setCents(&result.ComedyOverBaseCapacityAmount, o.ComedyOverBaseCapacityAmount)
	setCents(&result.ComedyOverBaseCapacityPerPerson, o.ComedyOverBaseCapacityPerPerson)
	setCents(&result.ComedyAmountPerAudience, o.ComedyAmountPerAudience)
	setInt(&result.BaseVolumeCreditThreshold, o.BaseVolumeCreditThreshold)
	setInt(&result.ComedyExtraVolumeFactor, o.ComedyExtraVolumeFactor)
	return result
}

func setCents(dst *Cents, v *Cents) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
