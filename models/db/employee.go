package dbmodels

import (
	"time"
)

type Employee struct {
	BaseTenantModel
	Tenant                 *Tenant
	BadgeNumber            string `gorm:"type:varchar(50);index:idx_employee_badge"`
	FirstName              string `gorm:"type:varchar(255)"`
	LastName               string `gorm:"type:varchar(255)"`
	MiddleName             string `gorm:"type:varchar(255)"`
	Rank                   string `gorm:"type:varchar(100)"`
	Email                  string `gorm:"type:varchar(255)"`
	Phone                  string `gorm:"type:varchar(50)"`
	EmploymentDate         time.Time
	IsTransferred          bool
	OriginalEmploymentDate *time.Time // дата приёма на первом месте службы, для переведённых
	SuperiorEmployeeID     *string    `gorm:"type:varchar(36)"`
	Superior               *Employee  `gorm:"foreignKey:SuperiorEmployeeID"`
	IsDeleted              bool       `gorm:"index"`
}

func (e Employee) GetFIO() string {
	fio := e.LastName + " " + e.FirstName
	if e.MiddleName != "" {
		fio += " " + e.MiddleName
	}
	return fio
}

// EffectiveEmploymentDate дата для расчёта выслуги лет
func (e Employee) EffectiveEmploymentDate() time.Time {
	if e.IsTransferred && e.OriginalEmploymentDate != nil {
		return *e.OriginalEmploymentDate
	}
	return e.EmploymentDate
}
