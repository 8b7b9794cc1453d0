package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DerivedStats are aggregates computed fresh from the currently visible
// proposal set. They are never persisted.
type DerivedStats struct {
	Total       int
	Active      int
	Funded      int
	TotalRaised decimal.Decimal
	AvgYield    decimal.Decimal
}

// ComputeStats derives counts and aggregates from a proposal set. An
// empty set yields all-zero stats rather than a division by zero.
func ComputeStats(proposals []*Proposal) DerivedStats {
	stats := DerivedStats{Total: len(proposals)}
	for _, p := range proposals {
		switch p.Status {
		case ProposalActive:
			stats.Active++
		case ProposalFunded:
			stats.Funded++
		}
		stats.TotalRaised = stats.TotalRaised.Add(p.RaisedAmount)
		stats.AvgYield = stats.AvgYield.Add(p.ExpectedYield)
	}
	if stats.Total > 0 {
		stats.AvgYield = stats.AvgYield.Div(decimal.NewFromInt(int64(stats.Total)))
	}
	return stats
}

// FormatTotalRaised renders the raised total as a display currency
// string, "$0" when nothing has been raised.
func (s DerivedStats) FormatTotalRaised() string {
	if s.TotalRaised.IsZero() {
		return "$0"
	}
	return FormatAmount(s.TotalRaised)
}

// FormatAvgYield renders the average yield with one decimal place,
// "0.0%" for an empty set.
func (s DerivedStats) FormatAvgYield() string {
	return fmt.Sprintf("%s%%", s.AvgYield.StringFixed(1))
}
