package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"police-hr-backend/controllers"
	tenantprovider "police-hr-backend/lib/tenant"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	tenantapimodels "police-hr-backend/models/api/tenant"
)

type tenantApiController struct {
	controllers.BaseAPIController
}

func InitTenantApiRouters(app *fiber.App) {
	controller := tenantApiController{}
	app.Route("tenant", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.get)
		router.Use(middleware.PermissionRequired(models.PermTenantManage))
		router.Get("settings", controller.getSettings)
		router.Put("settings", controller.saveSetting)
		router.Route("devices", func(deviceRoute fiber.Router) {
			deviceRoute.Get("", controller.listDevices)
			deviceRoute.Post("", controller.createDevice)
			deviceRoute.Delete(":id", controller.deleteDevice)
		})
	})
}

// @Summary Регистрация подразделения
// @Tags Подразделение
// @Description Регистрация подразделения
// @Param	body				body		tenantapimodels.TenantCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tenant [post]
func (c *tenantApiController) create(ctx *fiber.Ctx) error {
	var payload tenantapimodels.TenantCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := tenantprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации подразделения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка подразделения
// @Tags Подразделение
// @Description Карточка текущего подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=tenantapimodels.TenantView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tenant [get]
func (c *tenantApiController) get(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	view, err := tenantprovider.Instance.Get(tenantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения подразделения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Настройки подразделения
// @Tags Подразделение
// @Description Настройки подразделения, незаполненные отдаются со значениями по умолчанию
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]tenantapimodels.SettingView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tenant/settings [get]
func (c *tenantApiController) getSettings(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	list, err := tenantprovider.Instance.GetSettings(tenantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения настроек")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сохранение настройки
// @Tags Подразделение
// @Description Сохранение настройки подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		tenantapimodels.SettingUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tenant/settings [put]
func (c *tenantApiController) saveSetting(ctx *fiber.Ctx) error {
	var payload tenantapimodels.SettingUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err := tenantprovider.Instance.SaveSetting(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения настройки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Регистрация терминала
// @Tags Подразделение
// @Description Регистрация терминала учёта, ключ возвращается только при создании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		tenantapimodels.DeviceCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=tenantapimodels.DeviceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tenant/devices [post]
func (c *tenantApiController) createDevice(ctx *fiber.Ctx) error {
	var payload tenantapimodels.DeviceCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	view, err := tenantprovider.Instance.CreateDevice(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации терминала")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список терминалов
// @Tags Подразделение
// @Description Список терминалов учёта
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]tenantapimodels.DeviceView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tenant/devices [get]
func (c *tenantApiController) listDevices(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	list, err := tenantprovider.Instance.ListDevices(tenantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка терминалов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Удаление терминала
// @Tags Подразделение
// @Description Удаление терминала учёта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tenant/devices/{id} [delete]
func (c *tenantApiController) deleteDevice(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = tenantprovider.Instance.DeleteDevice(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления терминала")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
