package attendanceprovider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalcHours(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
	}

	t.Run(`regular day without overtime check`, func(t *testing.T) {
		worked, overtime := CalcHours(day(9, 0), day(17, 0))
		require.Equal(t, 8.0, worked)
		require.Equal(t, 0.0, overtime)
	})

	t.Run(`overtime check`, func(t *testing.T) {
		worked, overtime := CalcHours(day(9, 0), day(19, 30))
		require.Equal(t, 10.5, worked)
		require.Equal(t, 2.5, overtime)
	})

	t.Run(`rounding to hundredths check`, func(t *testing.T) {
		worked, overtime := CalcHours(day(9, 0), day(16, 20))
		require.Equal(t, 7.33, worked)
		require.Equal(t, 0.0, overtime)
	})

	t.Run(`clock out not after clock in check`, func(t *testing.T) {
		worked, overtime := CalcHours(day(9, 0), day(9, 0))
		require.Equal(t, 0.0, worked)
		require.Equal(t, 0.0, overtime)

		worked, overtime = CalcHours(day(9, 0), day(8, 0))
		require.Equal(t, 0.0, worked)
		require.Equal(t, 0.0, overtime)
	})
}

func TestCalcLateMinutes(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
	}

	t.Run(`late arrival check`, func(t *testing.T) {
		require.Equal(t, 25, CalcLateMinutes(day(9, 25), "09:00"))
	})

	t.Run(`on time and early arrival check`, func(t *testing.T) {
		require.Equal(t, 0, CalcLateMinutes(day(9, 0), "09:00"))
		require.Equal(t, 0, CalcLateMinutes(day(8, 40), "09:00"))
	})

	t.Run(`no shift assigned check`, func(t *testing.T) {
		require.Equal(t, 0, CalcLateMinutes(day(12, 0), ""))
	})

	t.Run(`broken shift start check`, func(t *testing.T) {
		require.Equal(t, 0, CalcLateMinutes(day(12, 0), "9 утра"))
	})
}
