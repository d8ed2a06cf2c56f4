package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRolePermissions(t *testing.T) {
	t.Run(`tenant admin check`, func(t *testing.T) {
		require.Equal(t, true, TenantAdminRole.HasPermission(PermTenantManage))
		require.Equal(t, true, TenantAdminRole.HasPermission(PermComplaintsManage))
		require.Equal(t, true, TenantAdminRole.HasPermission(PermArmoryRead))
	})

	t.Run(`hr officer cannot manage tenant check`, func(t *testing.T) {
		require.Equal(t, true, HrOfficerRole.HasPermission(PermComplaintsCreate))
		require.Equal(t, true, HrOfficerRole.HasPermission(PermArmoryManage))
		require.Equal(t, false, HrOfficerRole.HasPermission(PermTenantManage))
	})

	t.Run(`commander scope check`, func(t *testing.T) {
		require.Equal(t, true, CommanderRole.HasPermission(PermComplaintsManage))
		require.Equal(t, true, CommanderRole.HasPermission(PermShiftsManage))
		require.Equal(t, false, CommanderRole.HasPermission(PermComplaintsCreate))
		require.Equal(t, false, CommanderRole.HasPermission(PermEmployeesManage))
	})

	t.Run(`viewer is read only check`, func(t *testing.T) {
		require.Equal(t, true, ViewerRole.HasPermission(PermComplaintsRead))
		require.Equal(t, false, ViewerRole.HasPermission(PermComplaintsManage))
		require.Equal(t, false, ViewerRole.HasPermission(PermInventoryManage))
	})

	t.Run(`unknown role has nothing check`, func(t *testing.T) {
		require.Equal(t, false, UserRole("SOMEONE").HasPermission(PermComplaintsRead))
	})
}
