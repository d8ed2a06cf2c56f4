package complaintappealstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ComplaintAppeal) (id string, err error)
	GetByID(tenantID, complaintID, id string) (rec *dbmodels.ComplaintAppeal, err error)
	List(tenantID, complaintID string) (list []dbmodels.ComplaintAppeal, err error)
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

// Create повторная подача того же уровня отбивается уникальным индексом,
// проверка до вставки не нужна
func (i impl) Create(rec dbmodels.ComplaintAppeal) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errors.New("обжалование этого уровня уже подано")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, complaintID, id string) (*dbmodels.ComplaintAppeal, error) {
	rec := dbmodels.ComplaintAppeal{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Where("complaint_id = ?", complaintID).
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

func (i impl) List(tenantID, complaintID string) (list []dbmodels.ComplaintAppeal, err error) {
	list = []dbmodels.ComplaintAppeal{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Where("complaint_id = ?", complaintID).
		Order("appeal_level").
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
		Model(&dbmodels.ComplaintAppeal{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
