package armoryapimodels

import (
	"time"

	"github.com/pkg/errors"

	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	dbmodels "police-hr-backend/models/db"
)

type WeaponData struct {
	SerialNumber string `json:"serial_number"`
	Model        string `json:"model"`
}

func (r WeaponData) Validate() error {
	if r.SerialNumber == "" {
		return errors.New("не указан серийный номер")
	}
	if r.Model == "" {
		return errors.New("не указана модель")
	}
	return nil
}

type WeaponAssignData struct {
	EmployeeID   string    `json:"employee_id"`
	AssignedDate time.Time `json:"assigned_date"`
}

func (r WeaponAssignData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	return nil
}

type AmmunitionTypeData struct {
	Code     string `json:"code"`
	Caliber  string `json:"caliber"`
	Quantity int    `json:"quantity"`
}

func (r AmmunitionTypeData) Validate() error {
	if r.Code == "" {
		return errors.New("не указан код типа боеприпасов")
	}
	if r.Quantity < 0 {
		return errors.New("количество не может быть отрицательным")
	}
	return nil
}

type AmmunitionIssueData struct {
	EmployeeID string    `json:"employee_id"`
	Quantity   int       `json:"quantity"`
	IssuedDate time.Time `json:"issued_date"`
}

func (r AmmunitionIssueData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Quantity <= 0 {
		return errors.New("количество должно быть положительным")
	}
	return nil
}

type WeaponStatusData struct {
	Status models.WeaponStatus `json:"status"`
}

func (r WeaponStatusData) Validate() error {
	switch r.Status {
	case models.WeaponStatusInArmory, models.WeaponStatusMaintenance, models.WeaponStatusRetired:
		return nil
	case models.WeaponStatusAssigned:
		return errors.New("статус выдачи устанавливается через операцию выдачи")
	}
	return errors.New("неизвестный статус оружия")
}

type WeaponFilter struct {
	apimodels.Pagination
	Status models.WeaponStatus `json:"status" query:"status"`
}

type WeaponView struct {
	ID           string              `json:"id"`
	SerialNumber string              `json:"serial_number"`
	Model        string              `json:"model"`
	Status       models.WeaponStatus `json:"status"`
	StatusName   string              `json:"status_name"`
	HolderID     string              `json:"holder_id,omitempty"`
	HolderFIO    string              `json:"holder_fio,omitempty"`
}

func WeaponConvert(rec dbmodels.Weapon) WeaponView {
	view := WeaponView{
		ID:           rec.ID,
		SerialNumber: rec.SerialNumber,
		Model:        rec.Model,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
	}
	for _, assignment := range rec.Assignments {
		if assignment.ReturnedDate == nil {
			view.HolderID = assignment.EmployeeID
			if assignment.Employee != nil {
				view.HolderFIO = assignment.Employee.GetFIO()
			}
			break
		}
	}
	return view
}

type AmmunitionTypeView struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Caliber  string `json:"caliber"`
	Quantity int    `json:"quantity"`
}

func AmmunitionTypeConvert(rec dbmodels.AmmunitionType) AmmunitionTypeView {
	return AmmunitionTypeView{
		ID:       rec.ID,
		Code:     rec.Code,
		Caliber:  rec.Caliber,
		Quantity: rec.Quantity,
	}
}

type AmmunitionIssueView struct {
	ID          string    `json:"id"`
	TypeCode    string    `json:"type_code,omitempty"`
	EmployeeID  string    `json:"employee_id"`
	EmployeeFIO string    `json:"employee_fio,omitempty"`
	Quantity    int       `json:"quantity"`
	IssuedDate  time.Time `json:"issued_date"`
}

func AmmunitionIssueConvert(rec dbmodels.AmmunitionIssue) AmmunitionIssueView {
	view := AmmunitionIssueView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Quantity:   rec.Quantity,
		IssuedDate: rec.IssuedDate,
	}
	if rec.AmmunitionType != nil {
		view.TypeCode = rec.AmmunitionType.Code
	}
	if rec.Employee != nil {
		view.EmployeeFIO = rec.Employee.GetFIO()
	}
	return view
}
