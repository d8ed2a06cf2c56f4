package dbmodels

import (
	"time"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BaseTenantModel все доменные таблицы привязаны к подразделению (тенанту)
type BaseTenantModel struct {
	BaseModel
	TenantID string `gorm:"type:varchar(36);index" json:"tenant_id"`
}
