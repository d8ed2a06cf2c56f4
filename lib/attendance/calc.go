package attendanceprovider

import (
	"math"
	"time"
)

// StandardWorkDayHours норма рабочего дня, всё сверх неё — сверхурочные
const StandardWorkDayHours = 8.0

// CalcHours отработанные и сверхурочные часы с округлением до сотых
func CalcHours(clockIn, clockOut time.Time) (worked, overtime float64) {
	if !clockOut.After(clockIn) {
		return 0, 0
	}
	worked = clockOut.Sub(clockIn).Hours()
	worked = math.Round(worked*100) / 100
	if worked > StandardWorkDayHours {
		overtime = math.Round((worked-StandardWorkDayHours)*100) / 100
	}
	return worked, overtime
}

// CalcLateMinutes опоздание относительно начала смены "ЧЧ:ММ",
// без назначенной смены опоздание не считается
func CalcLateMinutes(clockIn time.Time, shiftStart string) int {
	if shiftStart == "" {
		return 0
	}
	start, err := time.Parse("15:04", shiftStart)
	if err != nil {
		return 0
	}
	shiftBegin := time.Date(clockIn.Year(), clockIn.Month(), clockIn.Day(),
		start.Hour(), start.Minute(), 0, 0, clockIn.Location())
	if !clockIn.After(shiftBegin) {
		return 0
	}
	return int(clockIn.Sub(shiftBegin).Minutes())
}
