package pricing

import "github.com/abdidvp/theater/internal/domain"

// Rule prices a performance of one play type.
type Rule interface {
	Amount(perf domain.Performance) domain.Cents
	VolumeCredits(perf domain.Performance) int
}

type tragedyRule struct {
	cfg domain.PricingConfig
}

func (r tragedyRule) Amount(perf domain.Performance) domain.Cents {
	amount := r.cfg.TragedyBaseAmount
	if perf.Audience > r.cfg.TragedyAudienceThreshold {
		over := domain.Cents(perf.Audience - r.cfg.TragedyAudienceThreshold)
		amount += r.cfg.TragedyOverBaseCapacityPerPerson * over
	}
	return amount
}

func (r tragedyRule) VolumeCredits(perf domain.Performance) int {
	return baseCredits(r.cfg, perf)
}

type comedyRule struct {
	cfg domain.PricingConfig
}

func (r comedyRule) Amount(perf domain.Performance) domain.Cents {
	amount := r.cfg.ComedyBaseAmount
	if perf.Audience > r.cfg.ComedyAudienceThreshold {
		over := domain.Cents(perf.Audience - r.cfg.ComedyAudienceThreshold)
		amount += r.cfg.ComedyOverBaseCapacityAmount + r.cfg.ComedyOverBaseCapacityPerPerson*over
	}
	amount += r.cfg.ComedyAmountPerAudience * domain.Cents(perf.Audience)
	return amount
}

// Comedies earn an extra credit for every ComedyExtraVolumeFactor attendees.
func (r comedyRule) VolumeCredits(perf domain.Performance) int {
	return baseCredits(r.cfg, perf) + perf.Audience/r.cfg.ComedyExtraVolumeFactor
}

func baseCredits(cfg domain.PricingConfig, perf domain.Performance) int {
	return max(perf.Audience-cfg.BaseVolumeCreditThreshold, 0)
}
