package attendancestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	attendanceapimodels "police-hr-backend/models/api/attendance"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AttendanceRecord) (id string, err error)
	GetByID(tenantID, id string) (rec *dbmodels.AttendanceRecord, err error)
	GetByEmployeeDay(tenantID, employeeID string, day time.Time) (rec *dbmodels.AttendanceRecord, err error)
	ListCount(tenantID string, filter attendanceapimodels.AttendanceFilter) (count int64, err error)
	List(tenantID string, filter attendanceapimodels.AttendanceFilter) (list []dbmodels.AttendanceRecord, err error)
	ListRange(tenantID string, from, to time.Time) (list []dbmodels.AttendanceRecord, err error)
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

func (i impl) Create(rec dbmodels.AttendanceRecord) (id string, err error) {
	err = i.db.
		Omit("Employee").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.AttendanceRecord, error) {
	rec := dbmodels.AttendanceRecord{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Preload("Employee").
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

func (i impl) GetByEmployeeDay(tenantID, employeeID string, day time.Time) (*dbmodels.AttendanceRecord, error) {
	rec := dbmodels.AttendanceRecord{}
	err := i.db.
		Where("tenant_id = ?", tenantID).
		Where("employee_id = ?", employeeID).
		Where("day = ?", day.Format("2006-01-02")).
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

func (i impl) ListCount(tenantID string, filter attendanceapimodels.AttendanceFilter) (count int64, err error) {
	tx := i.db.Model(dbmodels.AttendanceRecord{})
	if err = i.setFilter(tx, tenantID, filter); err != nil {
		return 0, err
	}
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения общего количества записей табеля")
	}
	return count, nil
}

func (i impl) List(tenantID string, filter attendanceapimodels.AttendanceFilter) (list []dbmodels.AttendanceRecord, err error) {
	list = []dbmodels.AttendanceRecord{}
	tx := i.db.Model(dbmodels.AttendanceRecord{})
	if err = i.setFilter(tx, tenantID, filter); err != nil {
		return nil, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	tx.Order("day desc")
	err = tx.Preload("Employee").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListRange(tenantID string, from, to time.Time) (list []dbmodels.AttendanceRecord, err error) {
	list = []dbmodels.AttendanceRecord{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Where("day >= ?", from.Format("2006-01-02")).
		Where("day < ?", to.Format("2006-01-02")).
		Order("day").
		Preload("Employee").
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
		Model(&dbmodels.AttendanceRecord{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) setFilter(tx *gorm.DB, tenantID string, filter attendanceapimodels.AttendanceFilter) error {
	tx.Where("tenant_id = ?", tenantID)
	if filter.EmployeeID != "" {
		tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DateFrom != "" {
		tx.Where("day >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		tx.Where("day <= ?", filter.DateTo)
	}
	return nil
}
