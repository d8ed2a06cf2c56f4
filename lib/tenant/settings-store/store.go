package tenantsettingsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"police-hr-backend/models"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	List(tenantID string) (list []dbmodels.TenantSetting, err error)
	GetValueByCode(tenantID string, code models.TenantSettingCode) (value string, err error)
	Save(tenantID string, code models.TenantSettingCode, value string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List(tenantID string) (list []dbmodels.TenantSetting, err error) {
	list = []dbmodels.TenantSetting{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Order("code").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) GetValueByCode(tenantID string, code models.TenantSettingCode) (value string, err error) {
	rec := dbmodels.TenantSetting{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Where("code = ?", code).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return rec.Value, nil
}

func (i impl) Save(tenantID string, code models.TenantSettingCode, value string) error {
	rec := dbmodels.TenantSetting{}
	err := i.db.
		Where("tenant_id = ?", tenantID).
		Where("code = ?", code).
		First(&rec).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		rec, ok := dbmodels.DefaultSettingsMap[code]
		if !ok {
			rec = dbmodels.TenantSetting{Code: code}
		}
		rec.TenantID = tenantID
		rec.Value = value
		return i.db.Save(&rec).Error
	}
	return i.db.
		Model(&dbmodels.TenantSetting{}).
		Where("id = ?", rec.ID).
		Update("value", value).
		Error
}
