package dbmodels

import "time"

type Committee struct {
	BaseTenantModel
	// уникальность (tenant_id, code) обеспечивает индекс в миграции
	Code           string `gorm:"type:varchar(50);index"`
	Name           string `gorm:"type:varchar(255)"`
	IsHeadquarters bool
	IsActive       bool
	DissolvedDate  *time.Time
	Members        []CommitteeMember `gorm:"foreignKey:CommitteeID"`
}

type CommitteeMember struct {
	BaseTenantModel
	CommitteeID string    `gorm:"type:varchar(36);index"`
	EmployeeID  string    `gorm:"type:varchar(36)"`
	Employee    *Employee `gorm:"foreignKey:EmployeeID"`
	MemberRole  string    `gorm:"type:varchar(100)"` // председатель, секретарь, член комиссии
	IsActive    bool
}
