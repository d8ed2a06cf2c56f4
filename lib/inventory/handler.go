package inventoryprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"police-hr-backend/db"
	employeestore "police-hr-backend/lib/employee/store"
	inventorystore "police-hr-backend/lib/inventory/store"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
	inventoryapimodels "police-hr-backend/models/api/inventory"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	CreateItem(tenantID string, request inventoryapimodels.ItemData) (id string, err error)
	UpdateItem(tenantID, id string, request inventoryapimodels.ItemData) error
	ListItems(tenantID string, filter inventoryapimodels.ItemFilter) (list []inventoryapimodels.ItemView, count int64, err error)
	Issue(tenantID, itemID string, request inventoryapimodels.IssueData) (view inventoryapimodels.IssueView, err error)
	Return(tenantID, issueID string) error
	ListIssues(tenantID, itemID string) (list []inventoryapimodels.IssueView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         inventorystore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
	)
	Instance = instance
}

type impl struct {
	store         inventorystore.Provider
	employeeStore employeestore.Provider
}

func (i impl) CreateItem(tenantID string, request inventoryapimodels.ItemData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return "", models.NewBadRequestError(err.Error())
	}
	rec := dbmodels.InventoryItem{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		Name:     request.Name,
		Code:     request.Code,
		Quantity: request.Quantity,
		Unit:     request.Unit,
	}
	id, err = i.store.CreateItem(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания позиции склада")
	}
	logger.
		WithField("item_name", rec.Name).
		WithField("rec_id", id).
		Info("создана позиция склада")
	return id, nil
}

func (i impl) UpdateItem(tenantID, id string, request inventoryapimodels.ItemData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	if err := request.Validate(); err != nil {
		return models.NewBadRequestError(err.Error())
	}
	rec, err := i.store.GetItemByID(tenantID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения позиции склада")
	}
	if rec == nil {
		return models.NewNotFoundError("позиция склада не найдена")
	}
	err = i.store.UpdateItem(tenantID, id, map[string]interface{}{
		"name":     request.Name,
		"code":     request.Code,
		"quantity": request.Quantity,
		"unit":     request.Unit,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка обновления позиции склада")
	}
	logger.Info("обновлена позиция склада")
	return nil
}

func (i impl) ListItems(tenantID string, filter inventoryapimodels.ItemFilter) (list []inventoryapimodels.ItemView, count int64, err error) {
	count, err = i.store.ListItemsCount(tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.ListItems(tenantID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения позиций склада")
	}
	list = make([]inventoryapimodels.ItemView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, inventoryapimodels.ItemConvert(rec))
	}
	return list, count, nil
}

// Issue выдача со склада, остаток и запись выдачи меняются
// в одной транзакции
func (i impl) Issue(tenantID, itemID string, request inventoryapimodels.IssueData) (view inventoryapimodels.IssueView, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", itemID)
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	item, err := i.store.GetItemByID(tenantID, itemID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения позиции склада")
	}
	if item == nil {
		return view, models.NewNotFoundError("позиция склада не найдена")
	}
	employee, err := i.employeeStore.GetByID(tenantID, request.EmployeeID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return view, models.NewBadRequestError("сотрудник не найден")
	}
	issuedDate := request.IssuedDate
	if issuedDate.IsZero() {
		issuedDate = time.Now()
	}
	rec := dbmodels.InventoryIssue{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		ItemID:     itemID,
		EmployeeID: request.EmployeeID,
		Quantity:   request.Quantity,
		IssuedDate: issuedDate,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		err := i.store.ChangeQuantity(tx, tenantID, itemID, -request.Quantity)
		if err != nil {
			return models.NewBadRequestError(err.Error())
		}
		rec.ID, err = i.store.CreateIssue(tx, rec)
		return err
	})
	if err != nil {
		if models.IsBadRequest(err) {
			return view, err
		}
		return view, errors.Wrap(err, "ошибка выдачи со склада")
	}
	logger.
		WithField("employee_id", request.EmployeeID).
		WithField("quantity", request.Quantity).
		Info("выдано со склада")
	saved, err := i.store.GetIssueByID(tenantID, rec.ID)
	if err != nil || saved == nil {
		return inventoryapimodels.IssueConvert(rec), nil
	}
	return inventoryapimodels.IssueConvert(*saved), nil
}

// Return возврат на склад, остаток восстанавливается
func (i impl) Return(tenantID, issueID string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", issueID)
	rec, err := i.store.GetIssueByID(tenantID, issueID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения выдачи")
	}
	if rec == nil {
		return models.NewNotFoundError("выдача не найдена")
	}
	if rec.ReturnDate != nil {
		return models.NewBadRequestError("возврат уже оформлен")
	}
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		err := i.store.UpdateIssue(tx, tenantID, issueID, map[string]interface{}{
			"return_date": now,
		})
		if err != nil {
			return err
		}
		return i.store.ChangeQuantity(tx, tenantID, rec.ItemID, rec.Quantity)
	})
	if err != nil {
		return errors.Wrap(err, "ошибка возврата на склад")
	}
	logger.Info("оформлен возврат на склад")
	return nil
}

func (i impl) ListIssues(tenantID, itemID string) (list []inventoryapimodels.IssueView, err error) {
	recList, err := i.store.ListIssues(tenantID, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка выдач")
	}
	list = make([]inventoryapimodels.IssueView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, inventoryapimodels.IssueConvert(rec))
	}
	return list, nil
}
