package tenantcounterstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"police-hr-backend/models"
)

type Provider interface {
	NextValue(tenantID string, code models.TenantCounterCode) (value int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// NextValue атомарный инкремент счётчика,
// конкурентные вызовы получают разные значения
func (i impl) NextValue(tenantID string, code models.TenantCounterCode) (value int64, err error) {
	err = i.db.
		Raw(`INSERT INTO tenant_counters (id, tenant_id, code, value, created_at, updated_at)
			VALUES (uuid_generate_v4(), ?, ?, 1, now(), now())
			ON CONFLICT (tenant_id, code)
			DO UPDATE SET value = tenant_counters.value + 1, updated_at = now()
			RETURNING value`, tenantID, code).
		Scan(&value).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения значения счётчика")
	}
	return value, nil
}
