package devicestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AttendanceDevice) (id string, err error)
	GetByKey(deviceKey string) (rec *dbmodels.AttendanceDevice, err error)
	List(tenantID string) (list []dbmodels.AttendanceDevice, err error)
	Delete(tenantID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AttendanceDevice) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByKey(deviceKey string) (*dbmodels.AttendanceDevice, error) {
	rec := dbmodels.AttendanceDevice{}
	err := i.db.
		Where("device_key = ?", deviceKey).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(tenantID string) (list []dbmodels.AttendanceDevice, err error) {
	list = []dbmodels.AttendanceDevice{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Order("name").
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

func (i impl) Delete(tenantID, id string) error {
	err := i.db.
		Where("tenant_id = ?", tenantID).
		Where("id = ?", id).
		Delete(&dbmodels.AttendanceDevice{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
