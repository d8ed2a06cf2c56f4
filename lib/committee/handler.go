package committeeprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"police-hr-backend/db"
	committeestore "police-hr-backend/lib/committee/store"
	employeestore "police-hr-backend/lib/employee/store"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	committeeapimodels "police-hr-backend/models/api/committee"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(tenantID string, request committeeapimodels.CommitteeData) (id string, err error)
	Get(tenantID, id string) (view committeeapimodels.CommitteeView, err error)
	List(tenantID string, filter committeeapimodels.CommitteeFilter) (list []committeeapimodels.CommitteeView, count int64, err error)
	AddMembers(tenantID, id string, request committeeapimodels.MembersBulkData) (result apimodels.BulkResult, err error)
	RemoveMember(tenantID, id, memberID string) error
	Dissolve(tenantID, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         committeestore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
	)
	Instance = instance
}

type impl struct {
	store         committeestore.Provider
	employeeStore employeestore.Provider
}

func (i impl) Create(tenantID string, request committeeapimodels.CommitteeData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return "", models.NewBadRequestError(err.Error())
	}
	rec := dbmodels.Committee{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		Code:           request.Code,
		Name:           request.Name,
		IsHeadquarters: request.IsHeadquarters,
		IsActive:       true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания комиссии")
	}
	logger.
		WithField("committee_code", rec.Code).
		WithField("rec_id", id).
		Info("создана комиссия")
	return id, nil
}

func (i impl) Get(tenantID, id string) (view committeeapimodels.CommitteeView, err error) {
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return committeeapimodels.CommitteeView{}, errors.Wrap(err, "ошибка получения комиссии")
	}
	if rec == nil {
		return committeeapimodels.CommitteeView{}, models.NewNotFoundError("комиссия не найдена")
	}
	return committeeapimodels.CommitteeConvert(*rec), nil
}

func (i impl) List(tenantID string, filter committeeapimodels.CommitteeFilter) (list []committeeapimodels.CommitteeView, count int64, err error) {
	count, err = i.store.ListCount(tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(tenantID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка комиссий")
	}
	list = make([]committeeapimodels.CommitteeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, committeeapimodels.CommitteeConvert(rec))
	}
	return list, count, nil
}

// AddMembers массовое добавление, некорректные записи пропускаются,
// по каждой возвращается причина ошибки
func (i impl) AddMembers(tenantID, id string, request committeeapimodels.MembersBulkData) (result apimodels.BulkResult, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	if err = request.Validate(); err != nil {
		return apimodels.BulkResult{}, models.NewBadRequestError(err.Error())
	}
	committee, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return apimodels.BulkResult{}, errors.Wrap(err, "ошибка получения комиссии")
	}
	if committee == nil {
		return apimodels.BulkResult{}, models.NewNotFoundError("комиссия не найдена")
	}
	if !committee.IsActive {
		return apimodels.BulkResult{}, models.NewBadRequestError("комиссия расформирована")
	}
	existing := map[string]bool{}
	for _, member := range committee.Members {
		if member.IsActive {
			existing[member.EmployeeID] = true
		}
	}
	for idx, member := range request.Members {
		if err := member.Validate(); err != nil {
			result.AddError(idx, err.Error())
			continue
		}
		if existing[member.EmployeeID] {
			result.AddError(idx, "сотрудник уже состоит в комиссии")
			continue
		}
		employee, err := i.employeeStore.GetByID(tenantID, member.EmployeeID)
		if err != nil {
			return apimodels.BulkResult{}, errors.Wrap(err, "ошибка проверки сотрудника")
		}
		if employee == nil {
			result.AddError(idx, "сотрудник не найден")
			continue
		}
		rec := dbmodels.CommitteeMember{
			BaseTenantModel: dbmodels.BaseTenantModel{
				TenantID: tenantID,
			},
			CommitteeID: id,
			EmployeeID:  member.EmployeeID,
			MemberRole:  member.MemberRole,
			IsActive:    true,
		}
		_, err = i.store.AddMember(rec)
		if err != nil {
			return apimodels.BulkResult{}, errors.Wrap(err, "ошибка добавления члена комиссии")
		}
		existing[member.EmployeeID] = true
		result.Created++
	}
	logger.
		WithField("created", result.Created).
		WithField("failed", result.Failed).
		Info("добавлены члены комиссии")
	return result, nil
}

func (i impl) RemoveMember(tenantID, id, memberID string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	err := i.store.RemoveMember(tenantID, id, memberID)
	if err != nil {
		return errors.Wrap(err, "ошибка исключения члена комиссии")
	}
	logger.WithField("member_id", memberID).Info("исключён член комиссии")
	return nil
}

// Dissolve расформирование: комиссия и все её члены деактивируются
// в одной транзакции
func (i impl) Dissolve(tenantID, id string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения комиссии")
	}
	if rec == nil {
		return models.NewNotFoundError("комиссия не найдена")
	}
	if !rec.IsActive {
		return models.NewBadRequestError("комиссия уже расформирована")
	}
	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.Committee{}).
			Where("id = ?", id).
			Where("tenant_id = ?", tenantID).
			Updates(map[string]interface{}{
				"is_active":      false,
				"dissolved_date": now,
			}).
			Error
		if err != nil {
			return err
		}
		return i.store.DeactivateMembers(tx, tenantID, id)
	})
	if err != nil {
		return errors.Wrap(err, "ошибка расформирования комиссии")
	}
	logger.Info("расформирована комиссия")
	return nil
}
