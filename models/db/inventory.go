package dbmodels

import "time"

type InventoryItem struct {
	BaseTenantModel
	Name     string `gorm:"type:varchar(255)"`
	Code     string `gorm:"type:varchar(50);index"`
	Quantity int
	Unit     string `gorm:"type:varchar(50)"`
}

type InventoryIssue struct {
	BaseTenantModel
	ItemID     string         `gorm:"type:varchar(36);index"`
	Item       *InventoryItem `gorm:"foreignKey:ItemID"`
	EmployeeID string         `gorm:"type:varchar(36);index"`
	Employee   *Employee      `gorm:"foreignKey:EmployeeID"`
	Quantity   int
	IssuedDate time.Time
	ReturnDate *time.Time
}
