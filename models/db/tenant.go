package dbmodels

import (
	"police-hr-backend/models"
)

type Tenant struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"` // название подразделения
	Code     string `gorm:"type:varchar(50);uniqueIndex"`
	Region   string `gorm:"type:varchar(255)"`
	IsActive bool
}

// TenantCounter тенантный счётчик, значение меняется только
// атомарным UPDATE ... RETURNING
type TenantCounter struct {
	BaseModel
	TenantID string                   `gorm:"type:varchar(36);uniqueIndex:idx_tenant_counter"`
	Code     models.TenantCounterCode `gorm:"type:varchar(100);uniqueIndex:idx_tenant_counter"`
	Value    int64
}

type TenantSetting struct {
	BaseModel
	TenantID string                   `gorm:"type:varchar(36);index:idx_tenant_setting_code"`
	Name     string                   `gorm:"type:varchar(255)"`
	Code     models.TenantSettingCode `gorm:"type:varchar(255);index:idx_tenant_setting_code"`
	Value    string                   `gorm:"type:varchar(500)"`
}

var DefaultTenantSenderEmail = TenantSetting{
	Name: "почта, с которой отправляются уведомления сотрудникам",
	Code: models.TenantSenderEmail,
}

var DefaultTenantReportEmail = TenantSetting{
	Name: "почта для отправки отчётов",
	Code: models.TenantReportEmail,
}

var DefaultTenantDecisionGpt = TenantSetting{
	Name: "инструкции для генерации проекта решения",
	Code: models.TenantDecisionGpt,
}

var DefaultSettingsMap = map[models.TenantSettingCode]TenantSetting{
	models.TenantSenderEmail: DefaultTenantSenderEmail,
	models.TenantReportEmail: DefaultTenantReportEmail,
	models.TenantDecisionGpt: DefaultTenantDecisionGpt,
}

// AttendanceDevice терминал учёта рабочего времени,
// авторизуется по ключу в заголовке X-Device-Key
type AttendanceDevice struct {
	BaseTenantModel
	Name      string `gorm:"type:varchar(255)"`
	DeviceKey string `gorm:"type:varchar(64);uniqueIndex"`
	Location  string `gorm:"type:varchar(255)"`
	IsActive  bool
}
