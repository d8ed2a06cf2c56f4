package armoryprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"police-hr-backend/db"
	armorystore "police-hr-backend/lib/armory/store"
	employeestore "police-hr-backend/lib/employee/store"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
	armoryapimodels "police-hr-backend/models/api/armory"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	CreateWeapon(tenantID string, request armoryapimodels.WeaponData) (id string, err error)
	GetWeapon(tenantID, id string) (view armoryapimodels.WeaponView, err error)
	ListWeapons(tenantID string, filter armoryapimodels.WeaponFilter) (list []armoryapimodels.WeaponView, count int64, err error)
	Assign(tenantID, weaponID string, request armoryapimodels.WeaponAssignData) error
	Return(tenantID, weaponID string) error
	SetStatus(tenantID, weaponID string, request armoryapimodels.WeaponStatusData) error
	CreateAmmunitionType(tenantID string, request armoryapimodels.AmmunitionTypeData) (id string, err error)
	ListAmmunitionTypes(tenantID string) (list []armoryapimodels.AmmunitionTypeView, err error)
	IssueAmmunition(tenantID, typeID string, request armoryapimodels.AmmunitionIssueData) (view armoryapimodels.AmmunitionIssueView, err error)
	ListAmmunitionIssues(tenantID, typeID string) (list []armoryapimodels.AmmunitionIssueView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         armorystore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
	)
	Instance = instance
}

type impl struct {
	store         armorystore.Provider
	employeeStore employeestore.Provider
}

func (i impl) CreateWeapon(tenantID string, request armoryapimodels.WeaponData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return "", models.NewBadRequestError(err.Error())
	}
	rec := dbmodels.Weapon{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		SerialNumber: request.SerialNumber,
		Model:        request.Model,
		Status:       models.WeaponStatusInArmory,
	}
	id, err = i.store.CreateWeapon(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка постановки оружия на учёт")
	}
	logger.
		WithField("serial_number", rec.SerialNumber).
		WithField("rec_id", id).
		Info("оружие поставлено на учёт")
	return id, nil
}

func (i impl) GetWeapon(tenantID, id string) (view armoryapimodels.WeaponView, err error) {
	rec, err := i.store.GetWeaponByID(tenantID, id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения единицы оружия")
	}
	if rec == nil {
		return view, models.NewNotFoundError("единица оружия не найдена")
	}
	return armoryapimodels.WeaponConvert(*rec), nil
}

func (i impl) ListWeapons(tenantID string, filter armoryapimodels.WeaponFilter) (list []armoryapimodels.WeaponView, count int64, err error) {
	count, err = i.store.ListWeaponsCount(tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.ListWeapons(tenantID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка оружия")
	}
	list = make([]armoryapimodels.WeaponView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, armoryapimodels.WeaponConvert(rec))
	}
	return list, count, nil
}

// Assign выдача закреплённого оружия, запись закрепления и смена
// статуса в одной транзакции
func (i impl) Assign(tenantID, weaponID string, request armoryapimodels.WeaponAssignData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", weaponID)
	if err := request.Validate(); err != nil {
		return models.NewBadRequestError(err.Error())
	}
	weapon, err := i.store.GetWeaponByID(tenantID, weaponID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения единицы оружия")
	}
	if weapon == nil {
		return models.NewNotFoundError("единица оружия не найдена")
	}
	if weapon.Status != models.WeaponStatusInArmory {
		return models.NewBadRequestError("оружие недоступно для выдачи")
	}
	employee, err := i.employeeStore.GetByID(tenantID, request.EmployeeID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return models.NewBadRequestError("сотрудник не найден")
	}
	assignedDate := request.AssignedDate
	if assignedDate.IsZero() {
		assignedDate = time.Now()
	}
	rec := dbmodels.WeaponAssignment{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		WeaponID:     weaponID,
		EmployeeID:   request.EmployeeID,
		AssignedDate: assignedDate,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		_, err := i.store.CreateAssignment(tx, rec)
		if err != nil {
			return err
		}
		return i.store.UpdateWeapon(tx, tenantID, weaponID, map[string]interface{}{
			"status": models.WeaponStatusAssigned,
		})
	})
	if err != nil {
		return errors.Wrap(err, "ошибка выдачи оружия")
	}
	logger.
		WithField("employee_id", request.EmployeeID).
		Info("оружие выдано сотруднику")
	return nil
}

// Return приём оружия обратно в оружейную
func (i impl) Return(tenantID, weaponID string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", weaponID)
	weapon, err := i.store.GetWeaponByID(tenantID, weaponID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения единицы оружия")
	}
	if weapon == nil {
		return models.NewNotFoundError("единица оружия не найдена")
	}
	if weapon.Status != models.WeaponStatusAssigned {
		return models.NewBadRequestError("оружие не числится выданным")
	}
	assignment, err := i.store.GetOpenAssignment(tenantID, weaponID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения закрепления")
	}
	if assignment == nil {
		return models.NewBadRequestError("открытое закрепление не найдено")
	}
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		err := i.store.UpdateAssignment(tx, tenantID, assignment.ID, map[string]interface{}{
			"returned_date": now,
		})
		if err != nil {
			return err
		}
		return i.store.UpdateWeapon(tx, tenantID, weaponID, map[string]interface{}{
			"status": models.WeaponStatusInArmory,
		})
	})
	if err != nil {
		return errors.Wrap(err, "ошибка приёма оружия")
	}
	logger.Info("оружие возвращено в оружейную")
	return nil
}

func (i impl) SetStatus(tenantID, weaponID string, request armoryapimodels.WeaponStatusData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", weaponID)
	if err := request.Validate(); err != nil {
		return models.NewBadRequestError(err.Error())
	}
	weapon, err := i.store.GetWeaponByID(tenantID, weaponID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения единицы оружия")
	}
	if weapon == nil {
		return models.NewNotFoundError("единица оружия не найдена")
	}
	if weapon.Status == models.WeaponStatusAssigned {
		return models.NewBadRequestError("сначала необходимо оформить возврат оружия")
	}
	err = i.store.UpdateWeapon(db.DB, tenantID, weaponID, map[string]interface{}{
		"status": request.Status,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка смены статуса оружия")
	}
	logger.
		WithField("status", request.Status).
		Info("изменён статус оружия")
	return nil
}

func (i impl) CreateAmmunitionType(tenantID string, request armoryapimodels.AmmunitionTypeData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return "", models.NewBadRequestError(err.Error())
	}
	rec := dbmodels.AmmunitionType{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		Code:     request.Code,
		Caliber:  request.Caliber,
		Quantity: request.Quantity,
	}
	id, err = i.store.CreateAmmunitionType(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания типа боеприпасов")
	}
	logger.
		WithField("code", rec.Code).
		WithField("rec_id", id).
		Info("создан тип боеприпасов")
	return id, nil
}

func (i impl) ListAmmunitionTypes(tenantID string) (list []armoryapimodels.AmmunitionTypeView, err error) {
	recList, err := i.store.ListAmmunitionTypes(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения типов боеприпасов")
	}
	list = make([]armoryapimodels.AmmunitionTypeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, armoryapimodels.AmmunitionTypeConvert(rec))
	}
	return list, nil
}

// IssueAmmunition выдача боеприпасов, остаток уменьшается атомарно
// в одной транзакции с записью выдачи
func (i impl) IssueAmmunition(tenantID, typeID string, request armoryapimodels.AmmunitionIssueData) (view armoryapimodels.AmmunitionIssueView, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", typeID)
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	ammoType, err := i.store.GetAmmunitionTypeByID(tenantID, typeID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения типа боеприпасов")
	}
	if ammoType == nil {
		return view, models.NewNotFoundError("тип боеприпасов не найден")
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
	rec := dbmodels.AmmunitionIssue{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		AmmunitionTypeID: typeID,
		EmployeeID:       request.EmployeeID,
		Quantity:         request.Quantity,
		IssuedDate:       issuedDate,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		err := i.store.ChangeAmmunitionQuantity(tx, tenantID, typeID, -request.Quantity)
		if err != nil {
			return models.NewBadRequestError(err.Error())
		}
		rec.ID, err = i.store.CreateAmmunitionIssue(tx, rec)
		return err
	})
	if err != nil {
		if models.IsBadRequest(err) {
			return view, err
		}
		return view, errors.Wrap(err, "ошибка выдачи боеприпасов")
	}
	logger.
		WithField("employee_id", request.EmployeeID).
		WithField("quantity", request.Quantity).
		Info("выданы боеприпасы")
	view = armoryapimodels.AmmunitionIssueConvert(rec)
	view.TypeCode = ammoType.Code
	view.EmployeeFIO = employee.GetFIO()
	return view, nil
}

func (i impl) ListAmmunitionIssues(tenantID, typeID string) (list []armoryapimodels.AmmunitionIssueView, err error) {
	recList, err := i.store.ListAmmunitionIssues(tenantID, typeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка выдач боеприпасов")
	}
	list = make([]armoryapimodels.AmmunitionIssueView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, armoryapimodels.AmmunitionIssueConvert(rec))
	}
	return list, nil
}
