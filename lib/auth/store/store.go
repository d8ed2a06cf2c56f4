package userstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TenantUser) (id string, err error)
	GetByID(id string) (rec *dbmodels.TenantUser, err error)
	GetByEmail(email string) (rec *dbmodels.TenantUser, err error)
	List(tenantID string) (list []dbmodels.TenantUser, err error)
	Update(tenantID, id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TenantUser) (id string, err error) {
	err = i.db.
		Omit("Tenant").
		Save(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errors.New("пользователь с такой почтой уже существует")
		}
		return "", err
	}
	return rec.ID, nil
}

// GetByID поиск без ограничения по подразделению, идентификатор
// приходит из подписанного токена
func (i impl) GetByID(id string) (*dbmodels.TenantUser, error) {
	rec := dbmodels.TenantUser{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) GetByEmail(email string) (*dbmodels.TenantUser, error) {
	rec := dbmodels.TenantUser{}
	err := i.db.
		Where("email = ?", email).
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

func (i impl) List(tenantID string) (list []dbmodels.TenantUser, err error) {
	list = []dbmodels.TenantUser{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Order("last_name, first_name").
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

func (i impl) Update(tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.TenantUser{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
