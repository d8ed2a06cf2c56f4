package shiftstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	shiftapimodels "police-hr-backend/models/api/shift"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	CreateShift(rec dbmodels.Shift) (id string, err error)
	GetShiftByID(tenantID, id string) (rec *dbmodels.Shift, err error)
	ListShifts(tenantID string) (list []dbmodels.Shift, err error)
	UpdateShift(tenantID, id string, updMap map[string]interface{}) error
	CreateAssignment(rec dbmodels.ShiftAssignment) (id string, err error)
	GetAssignment(tenantID, employeeID string, day time.Time) (rec *dbmodels.ShiftAssignment, err error)
	ListAssignmentsCount(tenantID string, filter shiftapimodels.AssignmentFilter) (count int64, err error)
	ListAssignments(tenantID string, filter shiftapimodels.AssignmentFilter) (list []dbmodels.ShiftAssignment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateShift(rec dbmodels.Shift) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetShiftByID(tenantID, id string) (*dbmodels.Shift, error) {
	rec := dbmodels.Shift{}
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

func (i impl) ListShifts(tenantID string) (list []dbmodels.Shift, err error) {
	list = []dbmodels.Shift{}
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

func (i impl) UpdateShift(tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Shift{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// CreateAssignment повторное назначение на день отбивается
// уникальным индексом, проверка до вставки не нужна
func (i impl) CreateAssignment(rec dbmodels.ShiftAssignment) (id string, err error) {
	err = i.db.
		Omit("Shift", "Employee").
		Create(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errors.New("смена на этот день уже назначена")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetAssignment(tenantID, employeeID string, day time.Time) (*dbmodels.ShiftAssignment, error) {
	rec := dbmodels.ShiftAssignment{}
	err := i.db.
		Where("tenant_id = ?", tenantID).
		Where("employee_id = ?", employeeID).
		Where("day = ?", day.Format("2006-01-02")).
		Preload("Shift").
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

func (i impl) ListAssignmentsCount(tenantID string, filter shiftapimodels.AssignmentFilter) (count int64, err error) {
	tx := i.db.Model(dbmodels.ShiftAssignment{})
	i.setFilter(tx, tenantID, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения общего количества назначений")
	}
	return count, nil
}

func (i impl) ListAssignments(tenantID string, filter shiftapimodels.AssignmentFilter) (list []dbmodels.ShiftAssignment, err error) {
	list = []dbmodels.ShiftAssignment{}
	tx := i.db.Model(dbmodels.ShiftAssignment{})
	i.setFilter(tx, tenantID, filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	tx.Order("day desc")
	err = tx.Preload("Shift").Preload("Employee").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) setFilter(tx *gorm.DB, tenantID string, filter shiftapimodels.AssignmentFilter) {
	tx.Where("tenant_id = ?", tenantID)
	if filter.EmployeeID != "" {
		tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.ShiftID != "" {
		tx.Where("shift_id = ?", filter.ShiftID)
	}
}
