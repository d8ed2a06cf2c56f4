package models

// Permission строка-разрешение вида "область:действие",
// проверяется на каждом защищённом маршруте
type Permission string

const (
	PermComplaintsCreate Permission = "complaints:create"
	PermComplaintsRead   Permission = "complaints:read"
	PermComplaintsManage Permission = "complaints:manage" // переходы по статусам, обжалования
	PermEmployeesManage  Permission = "employees:manage"
	PermEmployeesRead    Permission = "employees:read"
	PermCommitteesManage Permission = "committees:manage"
	PermCommitteesRead   Permission = "committees:read"
	PermAttendanceManage Permission = "attendance:manage"
	PermAttendanceRead   Permission = "attendance:read"
	PermShiftsManage     Permission = "shifts:manage"
	PermShiftsRead       Permission = "shifts:read"
	PermInventoryManage  Permission = "inventory:manage"
	PermInventoryRead    Permission = "inventory:read"
	PermArmoryManage     Permission = "armory:manage"
	PermArmoryRead       Permission = "armory:read"
	PermRewardsManage    Permission = "rewards:manage"
	PermRewardsRead      Permission = "rewards:read"
	PermTenantManage     Permission = "tenant:manage"
)

var readPermissions = []Permission{
	PermComplaintsRead,
	PermEmployeesRead,
	PermCommitteesRead,
	PermAttendanceRead,
	PermShiftsRead,
	PermInventoryRead,
	PermArmoryRead,
	PermRewardsRead,
}

var managePermissions = []Permission{
	PermComplaintsCreate,
	PermComplaintsManage,
	PermEmployeesManage,
	PermCommitteesManage,
	PermAttendanceManage,
	PermShiftsManage,
	PermInventoryManage,
	PermArmoryManage,
	PermRewardsManage,
}

var rolePermissions = map[UserRole][]Permission{
	TenantAdminRole: append(append(append([]Permission{}, readPermissions...), managePermissions...), PermTenantManage),
	HrOfficerRole:   append(append([]Permission{}, readPermissions...), managePermissions...),
	CommanderRole: append(append([]Permission{}, readPermissions...),
		PermComplaintsManage,
		PermAttendanceManage,
		PermShiftsManage,
	),
	ViewerRole: readPermissions,
}

func (r UserRole) HasPermission(perm Permission) bool {
	for _, allowed := range rolePermissions[r] {
		if allowed == perm {
			return true
		}
	}
	return false
}
