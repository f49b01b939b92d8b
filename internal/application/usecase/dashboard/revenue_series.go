package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/merchant-dashboard/backend/internal/domain/entity"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
)

// DefaultWindowDays is the length of the daily revenue series.
const DefaultWindowDays = 7

// dayLayout is the bucket key format for calendar days.
const dayLayout = "2006-01-02"

// DailyRevenuePoint is the settled revenue for one calendar day.
type DailyRevenuePoint struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Day returns the point's calendar day as YYYY-MM-DD.
func (p DailyRevenuePoint) Day() string {
	return p.Date.Format(dayLayout)
}

// BuildDailyRevenueSeries returns exactly windowDays points ending at now's calendar day,
// oldest first, with days without completed transactions zero-filled.
// Days are resolved in now's location. A windowDays of zero or less uses DefaultWindowDays.
func BuildDailyRevenueSeries(
	transactions []*entity.Transaction,
	now time.Time,
	windowDays int,
) ([]DailyRevenuePoint, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	if err := validateSnapshot(transactions); err != nil {
		return nil, err
	}

	days := GenerateDaySeries(now, windowDays)

	sums := make(map[string]decimal.Decimal, len(days))
	for _, day := range days {
		sums[day.Format(dayLayout)] = decimal.Zero
	}

	loc := now.Location()
	for _, tx := range transactions {
		if !tx.IsCompleted() {
			continue
		}
		key := tx.CreatedAt.In(loc).Format(dayLayout)
		if sum, ok := sums[key]; ok {
			sums[key] = sum.Add(tx.Amount)
		}
	}

	series := make([]DailyRevenuePoint, 0, len(days))
	for _, day := range days {
		series = append(series, DailyRevenuePoint{
			Date:    day,
			Revenue: sums[day.Format(dayLayout)].Round(moneyPlaces),
		})
	}

	return series, nil
}

// GenerateDaySeries returns count consecutive midnights ending at the day containing now.
func GenerateDaySeries(now time.Time, count int) []time.Time {
	today := startOfDay(now)
	days := make([]time.Time, 0, count)
	for i := count - 1; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i))
	}
	return days
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// validateSnapshot rejects transactions that cannot be attributed to a status bucket or a day.
func validateSnapshot(transactions []*entity.Transaction) error {
	for _, tx := range transactions {
		if !tx.Status.IsValid() {
			return domainerror.NewInvalidStatusError(tx.ID.String(), string(tx.Status))
		}
		if tx.CreatedAt.IsZero() {
			return domainerror.NewMalformedTimestampError(tx.ID.String(), "")
		}
	}
	return nil
}
