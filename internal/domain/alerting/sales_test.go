package alerting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/alerting"
	"github.com/SanchitKumbhar/Bynry-Task/internal/domain/entity"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func sale(qty int, daysAgo int) *entity.Sale {
	return &entity.Sale{
		ID:         "sale",
		ProductID:  "product",
		Quantity:   qty,
		OccurredAt: testNow.AddDate(0, 0, -daysAgo),
	}
}

func TestHasRecentActivity(t *testing.T) {
	cases := []struct {
		name         string
		sales        []*entity.Sale
		lookbackDays int
		want         bool
	}{
		{"no sales", nil, 90, false},
		{"sale inside window", []*entity.Sale{sale(10, 5)}, 90, true},
		{"sale outside window", []*entity.Sale{sale(100, 200)}, 90, false},
		{"sale exactly on the boundary counts", []*entity.Sale{sale(1, 90)}, 90, true},
		{"one recent among old ones", []*entity.Sale{sale(100, 200), sale(60, 10)}, 90, true},
		{"unsorted history", []*entity.Sale{sale(1, 3), sale(1, 400), sale(1, 50)}, 90, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := alerting.HasRecentActivity(tc.sales, testNow, tc.lookbackDays)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAverageDailyRate(t *testing.T) {
	cases := []struct {
		name       string
		sales      []*entity.Sale
		windowDays int
		want       decimal.Decimal
	}{
		{"no sales", nil, 30, decimal.Zero},
		{"single sale in window", []*entity.Sale{sale(10, 5)}, 30, decimal.NewFromInt(10).Div(decimal.NewFromInt(30))},
		{"sale outside window excluded", []*entity.Sale{sale(10, 5), sale(99, 45)}, 30, decimal.NewFromInt(10).Div(decimal.NewFromInt(30))},
		{"sales only outside window", []*entity.Sale{sale(50, 60)}, 30, decimal.Zero},
		{"boundary sale included", []*entity.Sale{sale(30, 30)}, 30, decimal.NewFromInt(1)},
		{"quantities summed", []*entity.Sale{sale(10, 1), sale(20, 2)}, 30, decimal.NewFromInt(1)},
		{"zero window", []*entity.Sale{sale(10, 5)}, 0, decimal.Zero},
		{"negative window", []*entity.Sale{sale(10, 5)}, -7, decimal.Zero},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := alerting.AverageDailyRate(tc.sales, testNow, tc.windowDays)
			assert.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

// The divisor is the full window even when the history is younger than the
// window; a product launched 10 days ago averages over 30 days regardless.
func TestAverageDailyRate_FullWindowDivisor(t *testing.T) {
	sales := []*entity.Sale{sale(30, 2), sale(30, 8)}
	got := alerting.AverageDailyRate(sales, testNow, 30)
	assert.True(t, decimal.NewFromInt(2).Equal(got), "got %s", got)
}
