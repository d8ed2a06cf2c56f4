package employeeapimodels

import (
	"time"

	"github.com/pkg/errors"

	apimodels "police-hr-backend/models/api"
	dbmodels "police-hr-backend/models/db"
)

type EmployeeData struct {
	BadgeNumber            string     `json:"badge_number"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	MiddleName             string     `json:"middle_name"`
	Rank                   string     `json:"rank"`
	Email                  string     `json:"email"`
	Phone                  string     `json:"phone"`
	EmploymentDate         time.Time  `json:"employment_date"`
	IsTransferred          bool       `json:"is_transferred"`
	OriginalEmploymentDate *time.Time `json:"original_employment_date"`
	SuperiorEmployeeID     string     `json:"superior_employee_id"`
}

func (r EmployeeData) Validate() error {
	if r.BadgeNumber == "" {
		return errors.New("не указан номер жетона")
	}
	if r.LastName == "" {
		return errors.New("не указана фамилия")
	}
	if r.EmploymentDate.IsZero() {
		return errors.New("не указана дата приёма на службу")
	}
	if r.IsTransferred && r.OriginalEmploymentDate == nil {
		return errors.New("для переведённого сотрудника не указана исходная дата приёма")
	}
	return nil
}

type EmployeeFilter struct {
	apimodels.Pagination
	Search string `json:"search" query:"search"`
	Rank   string `json:"rank" query:"rank"`
}

type EmployeeView struct {
	ID                     string     `json:"id"`
	BadgeNumber            string     `json:"badge_number"`
	FIO                    string     `json:"fio"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	MiddleName             string     `json:"middle_name"`
	Rank                   string     `json:"rank"`
	Email                  string     `json:"email"`
	Phone                  string     `json:"phone"`
	EmploymentDate         time.Time  `json:"employment_date"`
	IsTransferred          bool       `json:"is_transferred"`
	OriginalEmploymentDate *time.Time `json:"original_employment_date,omitempty"`
	SuperiorEmployeeID     *string    `json:"superior_employee_id,omitempty"`
	SuperiorFIO            string     `json:"superior_fio,omitempty"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:                     rec.ID,
		BadgeNumber:            rec.BadgeNumber,
		FIO:                    rec.GetFIO(),
		FirstName:              rec.FirstName,
		LastName:               rec.LastName,
		MiddleName:             rec.MiddleName,
		Rank:                   rec.Rank,
		Email:                  rec.Email,
		Phone:                  rec.Phone,
		EmploymentDate:         rec.EmploymentDate,
		IsTransferred:          rec.IsTransferred,
		OriginalEmploymentDate: rec.OriginalEmploymentDate,
		SuperiorEmployeeID:     rec.SuperiorEmployeeID,
	}
	if rec.Superior != nil {
		view.SuperiorFIO = rec.Superior.GetFIO()
	}
	return view
}
