package employeeprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"police-hr-backend/db"
	employeestore "police-hr-backend/lib/employee/store"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
	employeeapimodels "police-hr-backend/models/api/employee"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(tenantID string, request employeeapimodels.EmployeeData) (id string, err error)
	Update(tenantID, id string, request employeeapimodels.EmployeeData) error
	Get(tenantID, id string) (view employeeapimodels.EmployeeView, err error)
	List(tenantID string, filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, count int64, err error)
	Delete(tenantID, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: employeestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Create(tenantID string, request employeeapimodels.EmployeeData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return "", models.NewBadRequestError(err.Error())
	}
	if err = i.checkSuperior(tenantID, request.SuperiorEmployeeID, ""); err != nil {
		return "", err
	}
	rec := dbmodels.Employee{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		BadgeNumber:            request.BadgeNumber,
		FirstName:              request.FirstName,
		LastName:               request.LastName,
		MiddleName:             request.MiddleName,
		Rank:                   request.Rank,
		Email:                  request.Email,
		Phone:                  request.Phone,
		EmploymentDate:         request.EmploymentDate,
		IsTransferred:          request.IsTransferred,
		OriginalEmploymentDate: request.OriginalEmploymentDate,
	}
	if request.SuperiorEmployeeID != "" {
		rec.SuperiorEmployeeID = &request.SuperiorEmployeeID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания сотрудника")
	}
	logger.
		WithField("badge_number", rec.BadgeNumber).
		WithField("rec_id", id).
		Info("создан сотрудник")
	return id, nil
}

func (i impl) Update(tenantID, id string, request employeeapimodels.EmployeeData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	if err := request.Validate(); err != nil {
		return models.NewBadRequestError(err.Error())
	}
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return models.NewNotFoundError("сотрудник не найден")
	}
	if err = i.checkSuperior(tenantID, request.SuperiorEmployeeID, id); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"badge_number":             request.BadgeNumber,
		"first_name":               request.FirstName,
		"last_name":                request.LastName,
		"middle_name":              request.MiddleName,
		"rank":                     request.Rank,
		"email":                    request.Email,
		"phone":                    request.Phone,
		"employment_date":          request.EmploymentDate,
		"is_transferred":           request.IsTransferred,
		"original_employment_date": request.OriginalEmploymentDate,
	}
	if request.SuperiorEmployeeID != "" {
		updMap["superior_employee_id"] = request.SuperiorEmployeeID
	} else {
		updMap["superior_employee_id"] = nil
	}
	err = i.store.Update(tenantID, id, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления сотрудника")
	}
	logger.Info("обновлён сотрудник")
	return nil
}

func (i impl) Get(tenantID, id string) (view employeeapimodels.EmployeeView, err error) {
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, models.NewNotFoundError("сотрудник не найден")
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) List(tenantID string, filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, count int64, err error) {
	count, err = i.store.ListCount(tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(tenantID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка сотрудников")
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec))
	}
	return list, count, nil
}

func (i impl) Delete(tenantID, id string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return models.NewNotFoundError("сотрудник не найден")
	}
	err = i.store.Delete(tenantID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка удаления сотрудника")
	}
	logger.Info("удалён сотрудник")
	return nil
}

func (i impl) checkSuperior(tenantID, superiorID, selfID string) error {
	if superiorID == "" {
		return nil
	}
	if superiorID == selfID {
		return models.NewBadRequestError("сотрудник не может быть руководителем самого себя")
	}
	superior, err := i.store.GetByID(tenantID, superiorID)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки руководителя")
	}
	if superior == nil {
		return models.NewBadRequestError("руководитель не найден")
	}
	return nil
}
