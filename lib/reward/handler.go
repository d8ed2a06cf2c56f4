package rewardprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"police-hr-backend/db"
	complaintstore "police-hr-backend/lib/complaint/store"
	employeestore "police-hr-backend/lib/employee/store"
	rewardstore "police-hr-backend/lib/reward/store"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
	rewardapimodels "police-hr-backend/models/api/reward"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	CreateMilestone(tenantID string, request rewardapimodels.MilestoneData) (id string, err error)
	ListMilestones(tenantID string, onlyActive bool) (list []rewardapimodels.MilestoneView, err error)
	UpdateMilestone(tenantID, id string, request rewardapimodels.MilestoneData) error
	DeactivateMilestone(tenantID, id string) error
	Evaluate(tenantID, milestoneID, employeeID string) (view rewardapimodels.EligibilityView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          rewardstore.NewInstance(db.DB),
		employeeStore:  employeestore.NewInstance(db.DB),
		complaintStore: complaintstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
		"complaintStore", instance.complaintStore,
	)
	Instance = instance
}

type impl struct {
	store          rewardstore.Provider
	employeeStore  employeestore.Provider
	complaintStore complaintstore.Provider
}

func (i impl) CreateMilestone(tenantID string, request rewardapimodels.MilestoneData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return "", models.NewBadRequestError(err.Error())
	}
	rec := dbmodels.RewardMilestone{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		Name:          request.Name,
		RequiredYears: request.RequiredYears,
		Description:   request.Description,
		IsActive:      true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания награды за выслугу лет")
	}
	logger.
		WithField("milestone_name", rec.Name).
		WithField("rec_id", id).
		Info("создана награда за выслугу лет")
	return id, nil
}

func (i impl) ListMilestones(tenantID string, onlyActive bool) (list []rewardapimodels.MilestoneView, err error) {
	recList, err := i.store.List(tenantID, onlyActive)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка наград")
	}
	list = make([]rewardapimodels.MilestoneView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rewardapimodels.MilestoneConvert(rec))
	}
	return list, nil
}

func (i impl) UpdateMilestone(tenantID, id string, request rewardapimodels.MilestoneData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	if err := request.Validate(); err != nil {
		return models.NewBadRequestError(err.Error())
	}
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения награды")
	}
	if rec == nil {
		return models.NewNotFoundError("награда не найдена")
	}
	err = i.store.Update(tenantID, id, map[string]interface{}{
		"name":           request.Name,
		"required_years": request.RequiredYears,
		"description":    request.Description,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка обновления награды")
	}
	logger.Info("обновлена награда за выслугу лет")
	return nil
}

func (i impl) DeactivateMilestone(tenantID, id string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения награды")
	}
	if rec == nil {
		return models.NewNotFoundError("награда не найдена")
	}
	if !rec.IsActive {
		return models.NewBadRequestError("награда уже деактивирована")
	}
	err = i.store.Update(tenantID, id, map[string]interface{}{
		"is_active": false,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка деактивации награды")
	}
	logger.Info("награда деактивирована")
	return nil
}

// Evaluate оценка права сотрудника на награду с учётом
// его дисциплинарной истории
func (i impl) Evaluate(tenantID, milestoneID, employeeID string) (view rewardapimodels.EligibilityView, err error) {
	milestone, err := i.store.GetByID(tenantID, milestoneID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения награды")
	}
	if milestone == nil {
		return view, models.NewNotFoundError("награда не найдена")
	}
	employee, err := i.employeeStore.GetByID(tenantID, employeeID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return view, models.NewNotFoundError("сотрудник не найден")
	}
	complaints, err := i.complaintStore.FindByEmployee(tenantID, employeeID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения дисциплинарной истории")
	}
	now := time.Now()
	effectiveDate := employee.EffectiveEmploymentDate()
	status, postponedUntil := ClassifyEligibility(complaints, now)
	milestoneDate := MilestoneDate(effectiveDate, milestone.RequiredYears)
	view = rewardapimodels.EligibilityView{
		EmployeeID:               employeeID,
		MilestoneID:              milestoneID,
		EligibilityStatus:        status,
		CalculatedYearsOfService: CalcYearsOfService(effectiveDate, now),
		MilestoneDate:            milestoneDate,
		MilestoneReached:         !now.Before(milestoneDate),
		PostponedUntil:           postponedUntil,
	}
	return view, nil
}
