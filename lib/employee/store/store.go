package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	employeeapimodels "police-hr-backend/models/api/employee"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(tenantID, id string) (rec *dbmodels.Employee, err error)
	GetByBadge(tenantID, badgeNumber string) (rec *dbmodels.Employee, err error)
	ListCount(tenantID string, filter employeeapimodels.EmployeeFilter) (count int64, err error)
	List(tenantID string, filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error)
	Update(tenantID, id string, updMap map[string]interface{}) error
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

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.
		Omit("Tenant", "Superior").
		Save(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errors.New("сотрудник с таким номером жетона уже существует")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Where("is_deleted = false").
		Preload("Superior").
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

func (i impl) GetByBadge(tenantID, badgeNumber string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("tenant_id = ?", tenantID).
		Where("badge_number = ?", badgeNumber).
		Where("is_deleted = false").
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

func (i impl) ListCount(tenantID string, filter employeeapimodels.EmployeeFilter) (count int64, err error) {
	tx := i.db.Model(dbmodels.Employee{})
	i.setFilter(tx, tenantID, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения общего количества сотрудников")
	}
	return count, nil
}

func (i impl) List(tenantID string, filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.Model(dbmodels.Employee{})
	i.setFilter(tx, tenantID, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	tx.Order("last_name, first_name")
	err = tx.Preload("Superior").Find(&list).Error
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
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.New("сотрудник с таким номером жетона уже существует")
		}
		return err
	}
	return nil
}

func (i impl) Delete(tenantID, id string) error {
	return i.Update(tenantID, id, map[string]interface{}{"is_deleted": true})
}

func (i impl) setFilter(tx *gorm.DB, tenantID string, filter employeeapimodels.EmployeeFilter) {
	tx.Where("tenant_id = ?", tenantID).
		Where("is_deleted = false")
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx.Where("last_name ILIKE ? OR first_name ILIKE ? OR badge_number ILIKE ?", like, like, like)
	}
	if filter.Rank != "" {
		tx.Where("rank = ?", filter.Rank)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
