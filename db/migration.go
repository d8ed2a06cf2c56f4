package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "police-hr-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	migrated := []interface{}{
		&dbmodels.Tenant{},
		&dbmodels.TenantCounter{},
		&dbmodels.TenantSetting{},
		&dbmodels.TenantUser{},
		&dbmodels.AttendanceDevice{},
		&dbmodels.Employee{},
		&dbmodels.Committee{},
		&dbmodels.CommitteeMember{},
		&dbmodels.Complaint{},
		&dbmodels.ComplaintTimeline{},
		&dbmodels.ComplaintAppeal{},
		&dbmodels.ComplaintDocument{},
		&dbmodels.AttendanceRecord{},
		&dbmodels.Shift{},
		&dbmodels.ShiftAssignment{},
		&dbmodels.InventoryItem{},
		&dbmodels.InventoryIssue{},
		&dbmodels.Weapon{},
		&dbmodels.WeaponAssignment{},
		&dbmodels.AmmunitionType{},
		&dbmodels.AmmunitionIssue{},
		&dbmodels.RewardMilestone{},
	}
	for _, model := range migrated {
		if err := DB.AutoMigrate(model); err != nil {
			return errors.Wrapf(err, "ошибка миграции структуры %T", model)
		}
	}

	// составные уникальные ключи в рамках тенанта; дубликаты отлавливаются
	// как ошибка уникального индекса, а не проверкой перед вставкой
	uniqueIndexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS uidx_committee_tenant_code ON committees (tenant_id, code)",
		"CREATE UNIQUE INDEX IF NOT EXISTS uidx_ammunition_tenant_code ON ammunition_types (tenant_id, code)",
		"CREATE UNIQUE INDEX IF NOT EXISTS uidx_shift_assignment_day ON shift_assignments (tenant_id, employee_id, day)",
		"CREATE UNIQUE INDEX IF NOT EXISTS uidx_employee_tenant_badge ON employees (tenant_id, badge_number)",
	}
	for _, stmt := range uniqueIndexes {
		if err := DB.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "ошибка создания уникального индекса")
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}
