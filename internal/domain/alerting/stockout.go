package alerting

import "github.com/shopspring/decimal"

// DaysUntilStockout projects the whole days left before the stock depletes
// at the given average daily rate, truncating toward zero. A nil result
// means no estimate is possible (rate <= 0, no consumption signal) and is a
// valid outcome, not an error. The result is never negative.
func DaysUntilStockout(currentStock int, avgDailyRate decimal.Decimal) *int {
	if avgDailyRate.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	days := int(decimal.NewFromInt(int64(currentStock)).Div(avgDailyRate).IntPart())
	if days < 0 {
		days = 0
	}
	return &days
}
