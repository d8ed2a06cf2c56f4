package armorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"police-hr-backend/models"
	armoryapimodels "police-hr-backend/models/api/armory"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	CreateWeapon(rec dbmodels.Weapon) (id string, err error)
	GetWeaponByID(tenantID, id string) (rec *dbmodels.Weapon, err error)
	ListWeaponsCount(tenantID string, filter armoryapimodels.WeaponFilter) (count int64, err error)
	ListWeapons(tenantID string, filter armoryapimodels.WeaponFilter) (list []dbmodels.Weapon, err error)
	UpdateWeapon(tx *gorm.DB, tenantID, id string, updMap map[string]interface{}) error
	CreateAssignment(tx *gorm.DB, rec dbmodels.WeaponAssignment) (id string, err error)
	GetOpenAssignment(tenantID, weaponID string) (rec *dbmodels.WeaponAssignment, err error)
	UpdateAssignment(tx *gorm.DB, tenantID, id string, updMap map[string]interface{}) error
	CreateAmmunitionType(rec dbmodels.AmmunitionType) (id string, err error)
	GetAmmunitionTypeByID(tenantID, id string) (rec *dbmodels.AmmunitionType, err error)
	ListAmmunitionTypes(tenantID string) (list []dbmodels.AmmunitionType, err error)
	ChangeAmmunitionQuantity(tx *gorm.DB, tenantID, id string, delta int) error
	CreateAmmunitionIssue(tx *gorm.DB, rec dbmodels.AmmunitionIssue) (id string, err error)
	ListAmmunitionIssues(tenantID, ammunitionTypeID string) (list []dbmodels.AmmunitionIssue, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateWeapon(rec dbmodels.Weapon) (id string, err error) {
	err = i.db.
		Omit("Assignments").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetWeaponByID(tenantID, id string) (*dbmodels.Weapon, error) {
	rec := dbmodels.Weapon{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Preload("Assignments").
		Preload("Assignments.Employee").
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

func (i impl) ListWeaponsCount(tenantID string, filter armoryapimodels.WeaponFilter) (count int64, err error) {
	tx := i.db.Model(dbmodels.Weapon{})
	i.setFilter(tx, tenantID, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения общего количества единиц оружия")
	}
	return count, nil
}

func (i impl) ListWeapons(tenantID string, filter armoryapimodels.WeaponFilter) (list []dbmodels.Weapon, err error) {
	list = []dbmodels.Weapon{}
	tx := i.db.Model(dbmodels.Weapon{})
	i.setFilter(tx, tenantID, filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	tx.Order("serial_number")
	err = tx.Preload("Assignments").Preload("Assignments.Employee").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateWeapon(tx *gorm.DB, tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := tx.
		Model(&dbmodels.Weapon{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) CreateAssignment(tx *gorm.DB, rec dbmodels.WeaponAssignment) (id string, err error) {
	err = tx.
		Omit("Employee").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetOpenAssignment(tenantID, weaponID string) (*dbmodels.WeaponAssignment, error) {
	rec := dbmodels.WeaponAssignment{}
	err := i.db.
		Where("tenant_id = ?", tenantID).
		Where("weapon_id = ?", weaponID).
		Where("returned_date IS NULL").
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

func (i impl) UpdateAssignment(tx *gorm.DB, tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := tx.
		Model(&dbmodels.WeaponAssignment{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) CreateAmmunitionType(rec dbmodels.AmmunitionType) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errors.New("тип боеприпасов с таким кодом уже существует")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetAmmunitionTypeByID(tenantID, id string) (*dbmodels.AmmunitionType, error) {
	rec := dbmodels.AmmunitionType{}
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

func (i impl) ListAmmunitionTypes(tenantID string) (list []dbmodels.AmmunitionType, err error) {
	list = []dbmodels.AmmunitionType{}
	err = i.db.
		Where("tenant_id = ?", tenantID).
		Order("code").
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

// ChangeAmmunitionQuantity атомарное изменение остатка боеприпасов
func (i impl) ChangeAmmunitionQuantity(tx *gorm.DB, tenantID, id string, delta int) error {
	result := tx.
		Model(&dbmodels.AmmunitionType{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Where("quantity + ? >= 0", delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("недостаточно боеприпасов на складе")
	}
	return nil
}

func (i impl) CreateAmmunitionIssue(tx *gorm.DB, rec dbmodels.AmmunitionIssue) (id string, err error) {
	err = tx.
		Omit("AmmunitionType", "Employee").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListAmmunitionIssues(tenantID, ammunitionTypeID string) (list []dbmodels.AmmunitionIssue, err error) {
	list = []dbmodels.AmmunitionIssue{}
	tx := i.db.
		Where("tenant_id = ?", tenantID)
	if ammunitionTypeID != "" {
		tx = tx.Where("ammunition_type_id = ?", ammunitionTypeID)
	}
	err = tx.
		Order("issued_date desc").
		Preload("AmmunitionType").
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

func (i impl) setFilter(tx *gorm.DB, tenantID string, filter armoryapimodels.WeaponFilter) {
	tx.Where("tenant_id = ?", tenantID)
	if filter.Status != "" {
		tx.Where("status = ?", models.WeaponStatus(filter.Status))
	}
}
