package rewardstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RewardMilestone) (id string, err error)
	GetByID(tenantID, id string) (rec *dbmodels.RewardMilestone, err error)
	List(tenantID string, onlyActive bool) (list []dbmodels.RewardMilestone, err error)
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

func (i impl) Create(rec dbmodels.RewardMilestone) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.RewardMilestone, error) {
	rec := dbmodels.RewardMilestone{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
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

func (i impl) List(tenantID string, onlyActive bool) (list []dbmodels.RewardMilestone, err error) {
	list = []dbmodels.RewardMilestone{}
	tx := i.db.
		Where("tenant_id = ?", tenantID)
	if onlyActive {
		tx = tx.Where("is_active = true")
	}
	err = tx.
		Order("required_years").
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
		Model(&dbmodels.RewardMilestone{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
