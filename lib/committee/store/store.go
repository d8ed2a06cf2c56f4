package committeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	committeeapimodels "police-hr-backend/models/api/committee"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Committee) (id string, err error)
	GetByID(tenantID, id string) (rec *dbmodels.Committee, err error)
	ListCount(tenantID string, filter committeeapimodels.CommitteeFilter) (count int64, err error)
	List(tenantID string, filter committeeapimodels.CommitteeFilter) (list []dbmodels.Committee, err error)
	Update(tenantID, id string, updMap map[string]interface{}) error
	AddMember(rec dbmodels.CommitteeMember) (id string, err error)
	RemoveMember(tenantID, committeeID, memberID string) error
	DeactivateMembers(tx *gorm.DB, tenantID, committeeID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Committee) (id string, err error) {
	err = i.db.
		Omit("Members").
		Save(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errors.New("комиссия с таким кодом уже существует")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.Committee, error) {
	rec := dbmodels.Committee{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Preload("Members").
		Preload("Members.Employee").
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

func (i impl) ListCount(tenantID string, filter committeeapimodels.CommitteeFilter) (count int64, err error) {
	tx := i.db.Model(dbmodels.Committee{})
	i.setFilter(tx, tenantID, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения общего количества комиссий")
	}
	return count, nil
}

func (i impl) List(tenantID string, filter committeeapimodels.CommitteeFilter) (list []dbmodels.Committee, err error) {
	list = []dbmodels.Committee{}
	tx := i.db.Model(dbmodels.Committee{})
	i.setFilter(tx, tenantID, filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	tx.Order("code")
	err = tx.Preload("Members").Preload("Members.Employee").Find(&list).Error
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
		Model(&dbmodels.Committee{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) AddMember(rec dbmodels.CommitteeMember) (id string, err error) {
	err = i.db.
		Omit("Employee").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) RemoveMember(tenantID, committeeID, memberID string) error {
	err := i.db.
		Where("tenant_id = ?", tenantID).
		Where("committee_id = ?", committeeID).
		Where("id = ?", memberID).
		Delete(&dbmodels.CommitteeMember{}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) DeactivateMembers(tx *gorm.DB, tenantID, committeeID string) error {
	return tx.
		Model(&dbmodels.CommitteeMember{}).
		Where("tenant_id = ?", tenantID).
		Where("committee_id = ?", committeeID).
		Update("is_active", false).
		Error
}

func (i impl) setFilter(tx *gorm.DB, tenantID string, filter committeeapimodels.CommitteeFilter) {
	tx.Where("tenant_id = ?", tenantID)
	if filter.OnlyActive {
		tx.Where("is_active = true")
	}
	if filter.IsHeadquarters {
		tx.Where("is_headquarters = true")
	}
}
