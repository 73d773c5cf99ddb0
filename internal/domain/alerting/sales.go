package alerting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
)

// HasRecentActivity reports whether at least one sale happened on or after
// now minus lookbackDays (inclusive boundary). The sales slice carries no
// ordering guarantee.
func HasRecentActivity(sales []*entity.Sale, now time.Time, lookbackDays int) bool {
	cutoff := now.AddDate(0, 0, -lookbackDays)
	for _, s := range sales {
		if !s.OccurredAt.Before(cutoff) {
			return true
		}
	}
	return false
}

// AverageDailyRate sums the quantities of sales on or after now minus
// windowDays and divides by windowDays. Returns exactly zero when
// windowDays <= 0 or no sale qualifies.
//
// The divisor is always the full window length, even when the sale history
// only partially covers it, so recently launched products come out with an
// underestimated velocity. Known approximation, kept intentionally.
func AverageDailyRate(sales []*entity.Sale, now time.Time, windowDays int) decimal.Decimal {
	if windowDays <= 0 {
		return decimal.Zero
	}
	cutoff := now.AddDate(0, 0, -windowDays)
	total := 0
	for _, s := range sales {
		if !s.OccurredAt.Before(cutoff) {
			total += s.Quantity
		}
	}
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(windowDays)))
}
