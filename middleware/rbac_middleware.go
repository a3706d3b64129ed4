package middleware

import (
	"github.com/gofiber/fiber/v2"
	"hrms-backend/lib/rbac"
)

func rbacForbidden(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "RBAC_FORBIDDEN",
	})
}

// RbacMiddleware проверяет доступ роли пользователя к маршруту.
// Маршрут без зарегистрированного правила пропускается
func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		userRole := GetUserRole(ctx)
		if userID == "" || userRole == "" {
			return rbacForbidden(ctx)
		}

		ruleFn, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if found && !ruleFn(userID, userRole, ctx.Path()) {
			return rbacForbidden(ctx)
		}
		return ctx.Next()
	}
}
