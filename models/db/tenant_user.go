package dbmodels

import (
	"police-hr-backend/models"
)

type TenantUser struct {
	BaseTenantModel
	Tenant       *Tenant
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	FirstName    string          `gorm:"type:varchar(255)"`
	LastName     string          `gorm:"type:varchar(255)"`
	PasswordHash string          `gorm:"type:varchar(128)"`
	PasswordSalt string          `gorm:"type:varchar(64)"`
	Role         models.UserRole `gorm:"type:varchar(50)"`
	IsActive     bool
}

func (u TenantUser) GetFIO() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.LastName + " " + u.FirstName
}
