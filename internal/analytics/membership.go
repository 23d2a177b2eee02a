package analytics

import (
	"time"
)

// Executive-tier reward model. BreakEvenSpend is fixed by the model
// (fee divided by rebate rate), not derived from the dataset.
const (
	executiveRebateRate = 0.02
	executiveAnnualFee  = 60.0

	// BreakEvenSpend is the annual spend at which the Executive rebate
	// exactly covers the fee difference.
	BreakEvenSpend = executiveAnnualFee / executiveRebateRate
)

// MembershipProjection estimates whether an Executive membership would pay
// for itself. All figures are projections from the observed spend window,
// not a forecast.
type MembershipProjection struct {
	AnnualizedSpend  float64 `json:"annualizedSpend"`
	EstimatedRebate  float64 `json:"estimatedRebate"`
	AnnualFee        float64 `json:"annualFee"`
	NetBenefit       float64 `json:"netBenefit"`
	RecommendUpgrade bool    `json:"recommendUpgrade"`
	BreakEvenSpend   float64 `json:"breakEvenSpend"`
}

// MembershipProjection annualizes sales spend over the observed day span
// (minimum one day, so a single-day dataset projects a full year from that
// day) and applies the Executive reward model: 2% rebate against a $60 fee
// difference. With no sales the projection is all zeros except for the fee
// and the break-even constant.
func (e *Engine) MembershipProjection() MembershipProjection {
	var totalSpend float64
	var minT, maxT time.Time
	found := false

	for i := range e.transactions {
		t := &e.transactions[i]
		if !t.IsSale() {
			continue
		}
		totalSpend += t.Total
		when := t.DateTime.Time
		if !found || when.Before(minT) {
			minT = when
		}
		if !found || when.After(maxT) {
			maxT = when
		}
		found = true
	}

	days := 1
	if found {
		if d := int(maxT.Sub(minT).Hours() / 24); d > 0 {
			days = d
		}
	}

	annualized := totalSpend * 365 / float64(days)
	rebate := annualized * executiveRebateRate
	return MembershipProjection{
		AnnualizedSpend:  annualized,
		EstimatedRebate:  rebate,
		AnnualFee:        executiveAnnualFee,
		NetBenefit:       rebate - executiveAnnualFee,
		RecommendUpgrade: rebate > executiveAnnualFee,
		BreakEvenSpend:   BreakEvenSpend,
	}
}
