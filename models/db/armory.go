package dbmodels

import (
	"time"

	"police-hr-backend/models"
)

type Weapon struct {
	BaseTenantModel
	SerialNumber string              `gorm:"type:varchar(100);index"`
	Model        string              `gorm:"type:varchar(255)"`
	Status       models.WeaponStatus `gorm:"type:varchar(30);index"`
	Assignments  []WeaponAssignment  `gorm:"foreignKey:WeaponID"`
}

type WeaponAssignment struct {
	BaseTenantModel
	WeaponID     string    `gorm:"type:varchar(36);index"`
	EmployeeID   string    `gorm:"type:varchar(36);index"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID"`
	AssignedDate time.Time
	ReturnedDate *time.Time
}

// AmmunitionType уникальность (tenant_id, code) обеспечивает индекс в миграции
type AmmunitionType struct {
	BaseTenantModel
	Code     string `gorm:"type:varchar(50);index"`
	Caliber  string `gorm:"type:varchar(50)"`
	Quantity int
}

type AmmunitionIssue struct {
	BaseTenantModel
	AmmunitionTypeID string          `gorm:"type:varchar(36);index"`
	AmmunitionType   *AmmunitionType `gorm:"foreignKey:AmmunitionTypeID"`
	EmployeeID       string          `gorm:"type:varchar(36);index"`
	Employee         *Employee       `gorm:"foreignKey:EmployeeID"`
	Quantity         int
	IssuedDate       time.Time
}
