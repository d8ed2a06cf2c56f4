package tenantprovider

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"police-hr-backend/db"
	devicestore "police-hr-backend/lib/tenant/device-store"
	settingsstore "police-hr-backend/lib/tenant/settings-store"
	tenantstore "police-hr-backend/lib/tenant/store"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
	tenantapimodels "police-hr-backend/models/api/tenant"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(request tenantapimodels.TenantCreateData) (id string, err error)
	Get(tenantID string) (view tenantapimodels.TenantView, err error)
	GetSettings(tenantID string) (list []tenantapimodels.SettingView, err error)
	SaveSetting(tenantID string, request tenantapimodels.SettingUpdateData) error
	CreateDevice(tenantID string, request tenantapimodels.DeviceCreateData) (view tenantapimodels.DeviceView, err error)
	ListDevices(tenantID string) (list []tenantapimodels.DeviceView, err error)
	DeleteDevice(tenantID, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         tenantstore.NewInstance(db.DB),
		settingsStore: settingsstore.NewInstance(db.DB),
		deviceStore:   devicestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"settingsStore", instance.settingsStore,
		"deviceStore", instance.deviceStore,
	)
	Instance = instance
}

type impl struct {
	store         tenantstore.Provider
	settingsStore settingsstore.Provider
	deviceStore   devicestore.Provider
}

func (i impl) Create(request tenantapimodels.TenantCreateData) (id string, err error) {
	if err = request.Validate(); err != nil {
		return "", models.NewBadRequestError(err.Error())
	}
	exist, err := i.store.GetByCode(request.Code)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки кода подразделения")
	}
	if exist != nil {
		return "", models.NewBadRequestError("подразделение с таким кодом уже существует")
	}
	rec := dbmodels.Tenant{
		Name:     request.Name,
		Code:     request.Code,
		Region:   request.Region,
		IsActive: true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания подразделения")
	}
	log.
		WithField("tenant_id", id).
		WithField("tenant_code", request.Code).
		Info("создано подразделение")
	return id, nil
}

func (i impl) Get(tenantID string) (view tenantapimodels.TenantView, err error) {
	rec, err := i.store.GetByID(tenantID)
	if err != nil {
		return tenantapimodels.TenantView{}, errors.Wrap(err, "ошибка получения подразделения")
	}
	if rec == nil {
		return tenantapimodels.TenantView{}, models.NewNotFoundError("подразделение не найдено")
	}
	return tenantapimodels.TenantConvert(*rec), nil
}

func (i impl) GetSettings(tenantID string) (list []tenantapimodels.SettingView, err error) {
	recList, err := i.settingsStore.List(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения настроек подразделения")
	}
	exist := map[models.TenantSettingCode]bool{}
	list = make([]tenantapimodels.SettingView, 0, len(recList))
	for _, rec := range recList {
		exist[rec.Code] = true
		list = append(list, tenantapimodels.SettingConvert(rec))
	}
	// незаполненные настройки отдаются со значениями по умолчанию
	for code, def := range dbmodels.DefaultSettingsMap {
		if !exist[code] {
			list = append(list, tenantapimodels.SettingConvert(def))
		}
	}
	return list, nil
}

func (i impl) SaveSetting(tenantID string, request tenantapimodels.SettingUpdateData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("setting_code", string(request.Code))
	if err := request.Validate(); err != nil {
		return models.NewBadRequestError(err.Error())
	}
	err := i.settingsStore.Save(tenantID, request.Code, request.Value)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения настройки подразделения")
	}
	logger.Info("сохранена настройка подразделения")
	return nil
}

func (i impl) CreateDevice(tenantID string, request tenantapimodels.DeviceCreateData) (view tenantapimodels.DeviceView, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return tenantapimodels.DeviceView{}, models.NewBadRequestError(err.Error())
	}
	rec := dbmodels.AttendanceDevice{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		Name:      request.Name,
		Location:  request.Location,
		DeviceKey: uuid.New().String(),
		IsActive:  true,
	}
	_, err = i.deviceStore.Create(rec)
	if err != nil {
		return tenantapimodels.DeviceView{}, errors.Wrap(err, "ошибка регистрации терминала")
	}
	logger.
		WithField("device_name", rec.Name).
		WithField("rec_id", rec.ID).
		Info("зарегистрирован терминал учёта времени")
	// ключ терминала виден только в ответе на создание
	return tenantapimodels.DeviceConvert(rec, true), nil
}

func (i impl) ListDevices(tenantID string) (list []tenantapimodels.DeviceView, err error) {
	recList, err := i.deviceStore.List(tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка терминалов")
	}
	list = make([]tenantapimodels.DeviceView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, tenantapimodels.DeviceConvert(rec, false))
	}
	return list, nil
}

func (i impl) DeleteDevice(tenantID, id string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	err := i.deviceStore.Delete(tenantID, id)
	if err != nil {
		return errors.Wrap(err, "ошибка удаления терминала")
	}
	logger.Info("удалён терминал учёта времени")
	return nil
}
