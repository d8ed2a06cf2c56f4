package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"police-hr-backend/controllers"
	authprovider "police-hr-backend/lib/auth"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	authapimodels "police-hr-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Route("users", func(usersRoute fiber.Router) {
			usersRoute.Use(middleware.AuthorizationRequired())
			usersRoute.Use(middleware.PermissionRequired(models.PermTenantManage))
			usersRoute.Post("", controller.createUser)
			usersRoute.Get("", controller.listUsers)
			usersRoute.Delete(":id", controller.deactivateUser)
		})
	})
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация
// @Description Аутентификация пользователя
// @Param	body				body		authapimodels.LoginData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authprovider.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка аутентификации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновить JWT
// @Tags Аутентификация
// @Description Обновить JWT
// @Param	body				body		authapimodels.RefreshData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authprovider.Instance.Refresh(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления токена")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание пользователя подразделения
// @Tags Аутентификация
// @Description Создание пользователя подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		authapimodels.UserCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/users [post]
func (c *authApiController) createUser(ctx *fiber.Ctx) error {
	var payload authapimodels.UserCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	id, err := authprovider.Instance.CreateUser(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список пользователей подразделения
// @Tags Аутентификация
// @Description Список пользователей подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]authapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/users [get]
func (c *authApiController) listUsers(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	list, err := authprovider.Instance.ListUsers(tenantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Блокировка пользователя
// @Tags Аутентификация
// @Description Блокировка пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/users/{id} [delete]
func (c *authApiController) deactivateUser(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = authprovider.Instance.DeactivateUser(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка блокировки пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
