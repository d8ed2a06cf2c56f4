package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"police-hr-backend/db"
	devicestore "police-hr-backend/lib/tenant/device-store"
	apimodels "police-hr-backend/models/api"
)

const (
	deviceKeyHeader = "X-Device-Key"

	deviceIDKey       = "device_id"
	deviceTenantIDKey = "device_tenant_id"
)

// DeviceAuthRequired авторизация терминала учёта времени по ключу
func DeviceAuthRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		deviceKey := ctx.Get(deviceKeyHeader)
		if deviceKey == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("не указан ключ терминала"))
		}
		rec, err := devicestore.NewInstance(db.DB).GetByKey(deviceKey)
		if err != nil {
			log.WithError(err).Error("ошибка проверки ключа терминала")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка проверки ключа терминала"))
		}
		if rec == nil || !rec.IsActive {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("терминал не зарегистрирован"))
		}
		ctx.Locals(deviceIDKey, rec.ID)
		ctx.Locals(deviceTenantIDKey, rec.TenantID)
		return ctx.Next()
	}
}

func GetDeviceID(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals(deviceIDKey).(string); ok {
		return v
	}
	return ""
}

func GetDeviceTenantID(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals(deviceTenantIDKey).(string); ok {
		return v
	}
	return ""
}
