package attendanceapimodels

import (
	"time"

	"github.com/pkg/errors"

	apimodels "police-hr-backend/models/api"
	dbmodels "police-hr-backend/models/db"
)

type AttendanceData struct {
	EmployeeID string     `json:"employee_id"`
	Day        time.Time  `json:"day"`
	ClockIn    *time.Time `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out"`
	Note       string     `json:"note"`
}

func (r AttendanceData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Day.IsZero() {
		return errors.New("не указан день")
	}
	if r.ClockIn != nil && r.ClockOut != nil && r.ClockOut.Before(*r.ClockIn) {
		return errors.New("время ухода раньше времени прихода")
	}
	return nil
}

type AttendanceBulkData struct {
	Records []AttendanceData `json:"records"`
}

func (r AttendanceBulkData) Validate() error {
	if len(r.Records) == 0 {
		return errors.New("пустой список записей")
	}
	return nil
}

// DeviceClockData запрос терминала, сотрудник определяется по номеру жетона
type DeviceClockData struct {
	BadgeNumber string `json:"badge_number"`
}

func (r DeviceClockData) Validate() error {
	if r.BadgeNumber == "" {
		return errors.New("не указан номер жетона")
	}
	return nil
}

type AttendanceFilter struct {
	apimodels.Pagination
	EmployeeID string `json:"employee_id" query:"employee_id"`
	DateFrom   string `json:"date_from" query:"date_from"` // ГГГГ-ММ-ДД
	DateTo     string `json:"date_to" query:"date_to"`
}

type ReportRequest struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Email string `json:"email"` // если пусто — берётся из настроек тенанта
}

func (r ReportRequest) Validate() error {
	if r.Year < 2000 || r.Year > 2100 {
		return errors.New("недопустимый год")
	}
	if r.Month < 1 || r.Month > 12 {
		return errors.New("недопустимый месяц")
	}
	return nil
}

// ReportRow строка месячного табеля по сотруднику
type ReportRow struct {
	BadgeNumber   string  `json:"badge_number"`
	EmployeeFIO   string  `json:"employee_fio"`
	DaysWorked    int     `json:"days_worked"`
	WorkedHours   float64 `json:"worked_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	LateCount     int     `json:"late_count"`
	LateMinutes   int     `json:"late_minutes"`
}

type AttendanceView struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeFIO   string     `json:"employee_fio,omitempty"`
	Day           time.Time  `json:"day"`
	ClockIn       *time.Time `json:"clock_in,omitempty"`
	ClockOut      *time.Time `json:"clock_out,omitempty"`
	WorkedHours   float64    `json:"worked_hours"`
	OvertimeHours float64    `json:"overtime_hours"`
	LateMinutes   int        `json:"late_minutes"`
	Note          string     `json:"note,omitempty"`
}

func AttendanceConvert(rec dbmodels.AttendanceRecord) AttendanceView {
	view := AttendanceView{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Day:           rec.Day,
		ClockIn:       rec.ClockIn,
		ClockOut:      rec.ClockOut,
		WorkedHours:   rec.WorkedHours,
		OvertimeHours: rec.OvertimeHours,
		LateMinutes:   rec.LateMinutes,
		Note:          rec.Note,
	}
	if rec.Employee != nil {
		view.EmployeeFIO = rec.Employee.GetFIO()
	}
	return view
}
