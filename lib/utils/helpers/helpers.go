package helpers

import (
	"context"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// ParseDay разбор даты без времени в формате ГГГГ-ММ-ДД
func ParseDay(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// DayStart обнуляет время, оставляя дату
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
