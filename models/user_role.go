package models

type UserRole string

const (
	TenantAdminRole UserRole = "TENANT_ADMIN"
	HrOfficerRole   UserRole = "HR_OFFICER"
	CommanderRole   UserRole = "COMMANDER"
	ViewerRole      UserRole = "VIEWER"
)

var roleHumanName = map[UserRole]string{
	TenantAdminRole: "Администратор подразделения",
	HrOfficerRole:   "Сотрудник кадровой службы",
	CommanderRole:   "Руководитель",
	ViewerRole:      "Наблюдатель",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

const SystemUser = "Система"
