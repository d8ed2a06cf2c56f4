package shiftapimodels

import (
	"time"

	"github.com/pkg/errors"

	apimodels "police-hr-backend/models/api"
	dbmodels "police-hr-backend/models/db"
)

type ShiftData struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"` // ЧЧ:ММ
	EndTime   string `json:"end_time"`
}

func (r ShiftData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название смены")
	}
	if _, err := time.Parse("15:04", r.StartTime); err != nil {
		return errors.New("недопустимое время начала смены")
	}
	if _, err := time.Parse("15:04", r.EndTime); err != nil {
		return errors.New("недопустимое время окончания смены")
	}
	return nil
}

type AssignmentData struct {
	ShiftID    string    `json:"shift_id"`
	EmployeeID string    `json:"employee_id"`
	Day        time.Time `json:"day"`
}

func (r AssignmentData) Validate() error {
	if r.ShiftID == "" {
		return errors.New("не указана смена")
	}
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Day.IsZero() {
		return errors.New("не указан день")
	}
	return nil
}

type AssignmentBulkData struct {
	Assignments []AssignmentData `json:"assignments"`
}

func (r AssignmentBulkData) Validate() error {
	if len(r.Assignments) == 0 {
		return errors.New("пустой список назначений")
	}
	return nil
}

type AssignmentFilter struct {
	apimodels.Pagination
	EmployeeID string `json:"employee_id" query:"employee_id"`
	ShiftID    string `json:"shift_id" query:"shift_id"`
}

type ShiftView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

func ShiftConvert(rec dbmodels.Shift) ShiftView {
	return ShiftView{
		ID:        rec.ID,
		Name:      rec.Name,
		StartTime: rec.StartTime,
		EndTime:   rec.EndTime,
		IsActive:  rec.IsActive,
	}
}

type AssignmentView struct {
	ID          string    `json:"id"`
	ShiftID     string    `json:"shift_id"`
	ShiftName   string    `json:"shift_name,omitempty"`
	EmployeeID  string    `json:"employee_id"`
	EmployeeFIO string    `json:"employee_fio,omitempty"`
	Day         time.Time `json:"day"`
}

func AssignmentConvert(rec dbmodels.ShiftAssignment) AssignmentView {
	view := AssignmentView{
		ID:         rec.ID,
		ShiftID:    rec.ShiftID,
		EmployeeID: rec.EmployeeID,
		Day:        rec.Day,
	}
	if rec.Shift != nil {
		view.ShiftName = rec.Shift.Name
	}
	if rec.Employee != nil {
		view.EmployeeFIO = rec.Employee.GetFIO()
	}
	return view
}
