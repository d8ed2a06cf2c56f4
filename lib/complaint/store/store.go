package complaintstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"police-hr-backend/models"
	complaintapimodels "police-hr-backend/models/api/complaint"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Complaint) (id string, err error)
	GetByID(tenantID, id string) (rec *dbmodels.Complaint, err error)
	ListCount(tenantID string, filter complaintapimodels.ComplaintFilter) (count int64, err error)
	List(tenantID string, filter complaintapimodels.ComplaintFilter) (list []dbmodels.Complaint, err error)
	ListForExport(tenantID string, filter complaintapimodels.ComplaintFilter) (list []dbmodels.Complaint, err error)
	Update(tenantID, id string, updMap map[string]interface{}) error
	CountGuilty(tenantID, employeeID, offenseCode string) (count int64, err error)
	FindByEmployee(tenantID, employeeID string) (list []dbmodels.Complaint, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Complaint) (id string, err error) {
	err = i.db.
		Omit("Employee", "ReportedBy", "Superior", "Committee", "HqCommittee", "Timeline", "Appeals", "Documents").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.Complaint, error) {
	rec := dbmodels.Complaint{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Where("is_deleted = false").
		Preload("Employee").
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

func (i impl) ListCount(tenantID string, filter complaintapimodels.ComplaintFilter) (count int64, err error) {
	tx := i.db.Model(dbmodels.Complaint{})
	i.setFilter(tx, tenantID, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения общего количества дел")
	}
	return count, nil
}

func (i impl) List(tenantID string, filter complaintapimodels.ComplaintFilter) (list []dbmodels.Complaint, err error) {
	list = []dbmodels.Complaint{}
	tx := i.db.Model(dbmodels.Complaint{})
	i.setFilter(tx, tenantID, filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	tx.Order("created_at desc")
	err = tx.Preload("Employee").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// ListForExport полный список без пагинации
func (i impl) ListForExport(tenantID string, filter complaintapimodels.ComplaintFilter) (list []dbmodels.Complaint, err error) {
	list = []dbmodels.Complaint{}
	tx := i.db.Model(dbmodels.Complaint{})
	i.setFilter(tx, tenantID, filter)
	tx.Order("created_at")
	err = tx.Preload("Employee").Find(&list).Error
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
		Model(&dbmodels.Complaint{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// CountGuilty количество дел с виновным вердиктом по тому же проступку,
// определяет повторность
func (i impl) CountGuilty(tenantID, employeeID, offenseCode string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.Complaint{}).
		Where("tenant_id = ?", tenantID).
		Where("employee_id = ?", employeeID).
		Where("offense_code = ?", offenseCode).
		Where("finding IN ?", models.GuiltyFindings).
		Where("is_deleted = false").
		Count(&count).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка подсчёта повторных проступков")
	}
	return count, nil
}

func (i impl) FindByEmployee(tenantID, employeeID string) (list []dbmodels.Complaint, err error) {
	list = []dbmodels.Complaint{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Where("employee_id = ?", employeeID).
		Where("is_deleted = false").
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

func (i impl) setFilter(tx *gorm.DB, tenantID string, filter complaintapimodels.ComplaintFilter) {
	tx.Where("tenant_id = ?", tenantID).
		Where("is_deleted = false")
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Article != "" {
		tx.Where("article = ?", filter.Article)
	}
	if filter.EmployeeID != "" {
		tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.OffenseCode != "" {
		tx.Where("offense_code = ?", filter.OffenseCode)
	}
}
