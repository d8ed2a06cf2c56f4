package tenantapimodels

import (
	"github.com/pkg/errors"

	"police-hr-backend/models"
	dbmodels "police-hr-backend/models/db"
)

type TenantCreateData struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Region string `json:"region"`
}

func (r TenantCreateData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название подразделения")
	}
	if r.Code == "" {
		return errors.New("не указан код подразделения")
	}
	return nil
}

type TenantView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Region   string `json:"region,omitempty"`
	IsActive bool   `json:"is_active"`
}

func TenantConvert(rec dbmodels.Tenant) TenantView {
	return TenantView{
		ID:       rec.ID,
		Name:     rec.Name,
		Code:     rec.Code,
		Region:   rec.Region,
		IsActive: rec.IsActive,
	}
}

type SettingUpdateData struct {
	Code  models.TenantSettingCode `json:"code"`
	Value string                   `json:"value"`
}

func (r SettingUpdateData) Validate() error {
	if r.Code == "" {
		return errors.New("не указан код настройки")
	}
	return nil
}

type SettingView struct {
	ID    string                   `json:"id"`
	Name  string                   `json:"name"`
	Code  models.TenantSettingCode `json:"code"`
	Value string                   `json:"value"`
}

func SettingConvert(rec dbmodels.TenantSetting) SettingView {
	return SettingView{
		ID:    rec.ID,
		Name:  rec.Name,
		Code:  rec.Code,
		Value: rec.Value,
	}
}

type DeviceCreateData struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (r DeviceCreateData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название терминала")
	}
	return nil
}

type DeviceView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	DeviceKey string `json:"device_key,omitempty"` // возвращается только при создании
	IsActive  bool   `json:"is_active"`
}

func DeviceConvert(rec dbmodels.AttendanceDevice, withKey bool) DeviceView {
	view := DeviceView{
		ID:       rec.ID,
		Name:     rec.Name,
		Location: rec.Location,
		IsActive: rec.IsActive,
	}
	if withKey {
		view.DeviceKey = rec.DeviceKey
	}
	return view
}
