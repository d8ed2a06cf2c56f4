package committeeapimodels

import (
	"time"

	"github.com/pkg/errors"

	apimodels "police-hr-backend/models/api"
	dbmodels "police-hr-backend/models/db"
)

type CommitteeData struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	IsHeadquarters bool   `json:"is_headquarters"`
}

func (r CommitteeData) Validate() error {
	if r.Code == "" {
		return errors.New("не указан код комиссии")
	}
	if r.Name == "" {
		return errors.New("не указано название комиссии")
	}
	return nil
}

type MemberData struct {
	EmployeeID string `json:"employee_id"`
	MemberRole string `json:"member_role"`
}

func (r MemberData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	return nil
}

type MembersBulkData struct {
	Members []MemberData `json:"members"`
}

func (r MembersBulkData) Validate() error {
	if len(r.Members) == 0 {
		return errors.New("пустой список членов комиссии")
	}
	return nil
}

type CommitteeFilter struct {
	apimodels.Pagination
	OnlyActive     bool `json:"only_active" query:"only_active"`
	IsHeadquarters bool `json:"is_headquarters" query:"is_headquarters"`
}

type CommitteeView struct {
	ID             string       `json:"id"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	IsHeadquarters bool         `json:"is_headquarters"`
	IsActive       bool         `json:"is_active"`
	DissolvedDate  *time.Time   `json:"dissolved_date,omitempty"`
	Members        []MemberView `json:"members,omitempty"`
}

type MemberView struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	EmployeeFIO string `json:"employee_fio,omitempty"`
	MemberRole  string `json:"member_role"`
	IsActive    bool   `json:"is_active"`
}

func CommitteeConvert(rec dbmodels.Committee) CommitteeView {
	view := CommitteeView{
		ID:             rec.ID,
		Code:           rec.Code,
		Name:           rec.Name,
		IsHeadquarters: rec.IsHeadquarters,
		IsActive:       rec.IsActive,
		DissolvedDate:  rec.DissolvedDate,
	}
	for _, member := range rec.Members {
		view.Members = append(view.Members, MemberConvert(member))
	}
	return view
}

func MemberConvert(rec dbmodels.CommitteeMember) MemberView {
	view := MemberView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		MemberRole: rec.MemberRole,
		IsActive:   rec.IsActive,
	}
	if rec.Employee != nil {
		view.EmployeeFIO = rec.Employee.GetFIO()
	}
	return view
}
