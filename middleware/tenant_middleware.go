package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "police-hr-backend/lib/utils/auth-utils"
	"police-hr-backend/models"
)

func GetTenantID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if tenant, exist := claims["tenant"]; exist {
		return tenant.(string)
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		return name.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
