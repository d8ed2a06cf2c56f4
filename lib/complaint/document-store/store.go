package complaintdocumentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ComplaintDocument) (id string, err error)
	GetByID(tenantID, complaintID, id string) (rec *dbmodels.ComplaintDocument, err error)
	List(tenantID, complaintID string) (list []dbmodels.ComplaintDocument, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ComplaintDocument) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, complaintID, id string) (*dbmodels.ComplaintDocument, error) {
	rec := dbmodels.ComplaintDocument{}
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

func (i impl) List(tenantID, complaintID string) (list []dbmodels.ComplaintDocument, err error) {
	list = []dbmodels.ComplaintDocument{}
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
