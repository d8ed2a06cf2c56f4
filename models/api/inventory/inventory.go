package inventoryapimodels

import (
	"time"

	"github.com/pkg/errors"

	apimodels "police-hr-backend/models/api"
	dbmodels "police-hr-backend/models/db"
)

type ItemData struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

func (r ItemData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название позиции")
	}
	if r.Quantity < 0 {
		return errors.New("количество не может быть отрицательным")
	}
	return nil
}

type IssueData struct {
	EmployeeID string    `json:"employee_id"`
	Quantity   int       `json:"quantity"`
	IssuedDate time.Time `json:"issued_date"`
}

func (r IssueData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Quantity <= 0 {
		return errors.New("количество должно быть положительным")
	}
	return nil
}

type ItemFilter struct {
	apimodels.Pagination
	Search string `json:"search" query:"search"`
}

type ItemView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

func ItemConvert(rec dbmodels.InventoryItem) ItemView {
	return ItemView{
		ID:       rec.ID,
		Name:     rec.Name,
		Code:     rec.Code,
		Quantity: rec.Quantity,
		Unit:     rec.Unit,
	}
}

type IssueView struct {
	ID          string     `json:"id"`
	ItemID      string     `json:"item_id"`
	ItemName    string     `json:"item_name,omitempty"`
	EmployeeID  string     `json:"employee_id"`
	EmployeeFIO string     `json:"employee_fio,omitempty"`
	Quantity    int        `json:"quantity"`
	IssuedDate  time.Time  `json:"issued_date"`
	ReturnDate  *time.Time `json:"return_date,omitempty"`
}

func IssueConvert(rec dbmodels.InventoryIssue) IssueView {
	view := IssueView{
		ID:         rec.ID,
		ItemID:     rec.ItemID,
		EmployeeID: rec.EmployeeID,
		Quantity:   rec.Quantity,
		IssuedDate: rec.IssuedDate,
		ReturnDate: rec.ReturnDate,
	}
	if rec.Item != nil {
		view.ItemName = rec.Item.Name
	}
	if rec.Employee != nil {
		view.EmployeeFIO = rec.Employee.GetFIO()
	}
	return view
}
