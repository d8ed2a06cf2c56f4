package inventorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	inventoryapimodels "police-hr-backend/models/api/inventory"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	CreateItem(rec dbmodels.InventoryItem) (id string, err error)
	GetItemByID(tenantID, id string) (rec *dbmodels.InventoryItem, err error)
	ListItemsCount(tenantID string, filter inventoryapimodels.ItemFilter) (count int64, err error)
	ListItems(tenantID string, filter inventoryapimodels.ItemFilter) (list []dbmodels.InventoryItem, err error)
	UpdateItem(tenantID, id string, updMap map[string]interface{}) error
	ChangeQuantity(tx *gorm.DB, tenantID, id string, delta int) error
	CreateIssue(tx *gorm.DB, rec dbmodels.InventoryIssue) (id string, err error)
	GetIssueByID(tenantID, id string) (rec *dbmodels.InventoryIssue, err error)
	ListIssues(tenantID, itemID string) (list []dbmodels.InventoryIssue, err error)
	UpdateIssue(tx *gorm.DB, tenantID, id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateItem(rec dbmodels.InventoryItem) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetItemByID(tenantID, id string) (*dbmodels.InventoryItem, error) {
	rec := dbmodels.InventoryItem{}
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

func (i impl) ListItemsCount(tenantID string, filter inventoryapimodels.ItemFilter) (count int64, err error) {
	tx := i.db.Model(dbmodels.InventoryItem{})
	i.setFilter(tx, tenantID, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения общего количества позиций")
	}
	return count, nil
}

func (i impl) ListItems(tenantID string, filter inventoryapimodels.ItemFilter) (list []dbmodels.InventoryItem, err error) {
	list = []dbmodels.InventoryItem{}
	tx := i.db.Model(dbmodels.InventoryItem{})
	i.setFilter(tx, tenantID, filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	tx.Order("name")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateItem(tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.InventoryItem{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

// ChangeQuantity атомарное изменение остатка, отрицательный остаток
// отбивается проверкой в выражении
func (i impl) ChangeQuantity(tx *gorm.DB, tenantID, id string, delta int) error {
	result := tx.
		Model(&dbmodels.InventoryItem{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Where("quantity + ? >= 0", delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("недостаточно остатка на складе")
	}
	return nil
}

func (i impl) CreateIssue(tx *gorm.DB, rec dbmodels.InventoryIssue) (id string, err error) {
	err = tx.
		Omit("Item", "Employee").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetIssueByID(tenantID, id string) (*dbmodels.InventoryIssue, error) {
	rec := dbmodels.InventoryIssue{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Preload("Item").
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

func (i impl) ListIssues(tenantID, itemID string) (list []dbmodels.InventoryIssue, err error) {
	list = []dbmodels.InventoryIssue{}
	tx := i.db.
		Where("tenant_id = ?", tenantID)
	if itemID != "" {
		tx = tx.Where("item_id = ?", itemID)
	}
	err = tx.
		Order("issued_date desc").
		Preload("Item").
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

func (i impl) UpdateIssue(tx *gorm.DB, tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := tx.
		Model(&dbmodels.InventoryIssue{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) setFilter(tx *gorm.DB, tenantID string, filter inventoryapimodels.ItemFilter) {
	tx.Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}
}
