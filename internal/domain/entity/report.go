package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar-day format used as the DailyReport key.
const DateLayout = time.DateOnly

// DailyReport is the finalized sales total of one calendar day. At most one exists per date.
type DailyReport struct {
	Date  string // YYYY-MM-DD in the store's time zone.
	Total decimal.Decimal
}

// DateKey formats t as a calendar day in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ParseDateKey validates a YYYY-MM-DD string.
func ParseDateKey(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}
