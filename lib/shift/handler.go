package shiftprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"police-hr-backend/db"
	employeestore "police-hr-backend/lib/employee/store"
	shiftstore "police-hr-backend/lib/shift/store"
	"police-hr-backend/lib/utils/helpers"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	shiftapimodels "police-hr-backend/models/api/shift"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	CreateShift(tenantID string, request shiftapimodels.ShiftData) (id string, err error)
	ListShifts(tenantID string) (list []shiftapimodels.ShiftView, err error)
	UpdateShift(tenantID, id string, request shiftapimodels.ShiftData) error
	AssignBulk(tenantID string, request shiftapimodels.AssignmentBulkData) (result apimodels.BulkResult, err error)
	ListAssignments(tenantID string, filter shiftapimodels.AssignmentFilter) (list []shiftapimodels.AssignmentView, count int64, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         shiftstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
	)
	Instance = instance
}

type impl struct {
	store         shiftstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) CreateShift(tenantID string, request shiftapimodels.ShiftData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return "", models.NewBadRequestError(err.Error())
	}
	rec := dbmodels.Shift{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		Name:      request.Name,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		IsActive:  true,
	}
	id, err = i.store.CreateShift(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания смены")
	}
	logger.
		WithField("shift_name", rec.Name).
		WithField("rec_id", id).
		Info("создана смена")
	return id, nil
}

func (i impl) ListShifts(tenantID string) (list []shiftapimodels.ShiftView, err error) {
	recList, err := i.store.ListShifts(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка смен")
	}
	list = make([]shiftapimodels.ShiftView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, shiftapimodels.ShiftConvert(rec))
	}
	return list, nil
}

func (i impl) UpdateShift(tenantID, id string, request shiftapimodels.ShiftData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	if err := request.Validate(); err != nil {
		return models.NewBadRequestError(err.Error())
	}
	rec, err := i.store.GetShiftByID(tenantID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения смены")
	}
	if rec == nil {
		return models.NewNotFoundError("смена не найдена")
	}
	err = i.store.UpdateShift(tenantID, id, map[string]interface{}{
		"name":       request.Name,
		"start_time": request.StartTime,
		"end_time":   request.EndTime,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка обновления смены")
	}
	logger.Info("обновлена смена")
	return nil
}

// AssignBulk массовое назначение смен, каждая позиция обрабатывается
// независимо, дубликаты на день отклоняются
func (i impl) AssignBulk(tenantID string, request shiftapimodels.AssignmentBulkData) (result apimodels.BulkResult, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return apimodels.BulkResult{}, models.NewBadRequestError(err.Error())
	}
	shifts := map[string]*dbmodels.Shift{}
	for idx, assignment := range request.Assignments {
		if err := assignment.Validate(); err != nil {
			result.AddError(idx, err.Error())
			continue
		}
		shift, ok := shifts[assignment.ShiftID]
		if !ok {
			shift, err = i.store.GetShiftByID(tenantID, assignment.ShiftID)
			if err != nil {
				return apimodels.BulkResult{}, errors.Wrap(err, "ошибка получения смены")
			}
			shifts[assignment.ShiftID] = shift
		}
		if shift == nil {
			result.AddError(idx, "смена не найдена")
			continue
		}
		if !shift.IsActive {
			result.AddError(idx, "смена не активна")
			continue
		}
		employee, err := i.employeeStore.GetByID(tenantID, assignment.EmployeeID)
		if err != nil {
			return apimodels.BulkResult{}, errors.Wrap(err, "ошибка проверки сотрудника")
		}
		if employee == nil {
			result.AddError(idx, "сотрудник не найден")
			continue
		}
		rec := dbmodels.ShiftAssignment{
			BaseTenantModel: dbmodels.BaseTenantModel{
				TenantID: tenantID,
			},
			ShiftID:    assignment.ShiftID,
			EmployeeID: assignment.EmployeeID,
			Day:        helpers.DayStart(assignment.Day),
		}
		_, err = i.store.CreateAssignment(rec)
		if err != nil {
			result.AddError(idx, err.Error())
			continue
		}
		result.Created++
	}
	logger.
		WithField("created", result.Created).
		WithField("failed", result.Failed).
		Info("назначены смены")
	return result, nil
}

func (i impl) ListAssignments(tenantID string, filter shiftapimodels.AssignmentFilter) (list []shiftapimodels.AssignmentView, count int64, err error) {
	count, err = i.store.ListAssignmentsCount(tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.ListAssignments(tenantID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка назначений")
	}
	list = make([]shiftapimodels.AssignmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, shiftapimodels.AssignmentConvert(rec))
	}
	return list, count, nil
}
