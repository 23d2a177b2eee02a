package analytics

import (
	"strings"
)

// IsKirklandSignature reports whether a line-item description refers to the
// house brand. Receipts abbreviate it as a "KS " prefix (trailing space
// matters, otherwise "KSALAD" style descriptions would match) or spell out
// "KIRKLAND".
func IsKirklandSignature(description string) bool {
	desc := strings.ToUpper(description)
	return strings.Contains(desc, "KS ") || strings.Contains(desc, "KIRKLAND")
}

// BrandSplit is the house-brand versus name-brand spend split across all
// line items.
type BrandSplit struct {
	Kirkland           float64 `json:"kirkland"`
	Brand              float64 `json:"brand"`
	KirklandPercentage float64 `json:"kirklandPercentage"`
}

// KirklandSplit classifies every line item with IsKirklandSignature and sums
// amounts into the two buckets. KirklandPercentage stays 0 unless the
// combined total is positive.
func (e *Engine) KirklandSplit() BrandSplit {
	var s BrandSplit
	for i := range e.transactions {
		for _, item := range e.transactions[i].Items {
			if IsKirklandSignature(item.Description) {
				s.Kirkland += item.Amount
			} else {
				s.Brand += item.Amount
			}
		}
	}
	if total := s.Kirkland + s.Brand; total > 0 {
		s.KirklandPercentage = s.Kirkland / total * 100
	}
	return s
}
