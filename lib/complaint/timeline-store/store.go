package complainttimelinestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "police-hr-backend/models/db"
)

// записи журнала только добавляются, изменение и удаление не поддерживаются
type Provider interface {
	Create(rec dbmodels.ComplaintTimeline) (id string, err error)
	List(tenantID, complaintID string) (list []dbmodels.ComplaintTimeline, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ComplaintTimeline) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(tenantID, complaintID string) (list []dbmodels.ComplaintTimeline, err error) {
	list = []dbmodels.ComplaintTimeline{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Where("complaint_id = ?", complaintID).
		Order("created_at").
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
