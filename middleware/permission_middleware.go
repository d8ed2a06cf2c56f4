package middleware

import (
	"github.com/gofiber/fiber/v2"

	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
)

// PermissionRequired проверка строки-разрешения на маршруте
func PermissionRequired(perm models.Permission) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := GetUserRole(ctx)
		if role == "" || !role.HasPermission(perm) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
