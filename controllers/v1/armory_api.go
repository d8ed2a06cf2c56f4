package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"police-hr-backend/controllers"
	armoryprovider "police-hr-backend/lib/armory"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	armoryapimodels "police-hr-backend/models/api/armory"
)

type armoryApiController struct {
	controllers.BaseAPIController
}

func InitArmoryApiRouters(app *fiber.App) {
	controller := armoryApiController{}
	app.Route("armory", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Route("weapons", func(weaponRoute fiber.Router) {
			weaponRoute.Get("", middleware.PermissionRequired(models.PermArmoryRead), controller.listWeapons)
			weaponRoute.Post("", middleware.PermissionRequired(models.PermArmoryManage), controller.createWeapon)
			weaponRoute.Route(":id", func(idRoute fiber.Router) {
				idRoute.Get("", middleware.PermissionRequired(models.PermArmoryRead), controller.getWeapon)
				idRoute.Use(middleware.PermissionRequired(models.PermArmoryManage))
				idRoute.Patch("assign", controller.assignWeapon)
				idRoute.Patch("return", controller.returnWeapon)
				idRoute.Patch("status", controller.setWeaponStatus)
			})
		})
		router.Route("ammunition", func(ammoRoute fiber.Router) {
			ammoRoute.Get("", middleware.PermissionRequired(models.PermArmoryRead), controller.listAmmunitionTypes)
			ammoRoute.Get("issues", middleware.PermissionRequired(models.PermArmoryRead), controller.listAmmunitionIssues)
			ammoRoute.Post("", middleware.PermissionRequired(models.PermArmoryManage), controller.createAmmunitionType)
			ammoRoute.Post(":id/issue", middleware.PermissionRequired(models.PermArmoryManage), controller.issueAmmunition)
		})
	})
}

// @Summary Постановка оружия на учёт
// @Tags Оружейная
// @Description Постановка единицы оружия на учёт
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		armoryapimodels.WeaponData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/weapons [post]
func (c *armoryApiController) createWeapon(ctx *fiber.Ctx) error {
	var payload armoryapimodels.WeaponData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	id, err := armoryprovider.Instance.CreateWeapon(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка постановки оружия на учёт")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список оружия
// @Tags Оружейная
// @Description Список оружия с пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status	query	string	false	"статус оружия"
// @Param   page	query	int		false	"страница"
// @Param   limit	query	int		false	"записей на странице"
// @Success 200 {object} apimodels.PagedResponse{data=[]armoryapimodels.WeaponView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/weapons [get]
func (c *armoryApiController) listWeapons(ctx *fiber.Ctx) error {
	var filter armoryapimodels.WeaponFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, count, err := armoryprovider.Instance.ListWeapons(tenantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка оружия")
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewPagedResponse(list, count, page, limit))
}

// @Summary Карточка оружия
// @Tags Оружейная
// @Description Карточка единицы оружия
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=armoryapimodels.WeaponView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/weapons/{id} [get]
func (c *armoryApiController) getWeapon(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	view, err := armoryprovider.Instance.GetWeapon(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения единицы оружия")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Выдача оружия
// @Tags Оружейная
// @Description Выдача оружия сотруднику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		armoryapimodels.WeaponAssignData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/weapons/{id}/assign [patch]
func (c *armoryApiController) assignWeapon(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload armoryapimodels.WeaponAssignData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = armoryprovider.Instance.Assign(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выдачи оружия")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Возврат оружия
// @Tags Оружейная
// @Description Приём оружия обратно в оружейную
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/weapons/{id}/return [patch]
func (c *armoryApiController) returnWeapon(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = armoryprovider.Instance.Return(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка возврата оружия")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса оружия
// @Tags Оружейная
// @Description Перевод оружия на обслуживание, списание или возврат в строй
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		armoryapimodels.WeaponStatusData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/weapons/{id}/status [patch]
func (c *armoryApiController) setWeaponStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload armoryapimodels.WeaponStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = armoryprovider.Instance.SetStatus(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса оружия")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Создание типа боеприпасов
// @Tags Оружейная
// @Description Создание типа боеприпасов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		armoryapimodels.AmmunitionTypeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/ammunition [post]
func (c *armoryApiController) createAmmunitionType(ctx *fiber.Ctx) error {
	var payload armoryapimodels.AmmunitionTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	id, err := armoryprovider.Instance.CreateAmmunitionType(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания типа боеприпасов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Типы боеприпасов
// @Tags Оружейная
// @Description Типы боеприпасов с остатками
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]armoryapimodels.AmmunitionTypeView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/ammunition [get]
func (c *armoryApiController) listAmmunitionTypes(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	list, err := armoryprovider.Instance.ListAmmunitionTypes(tenantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения типов боеприпасов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выдача боеприпасов
// @Tags Оружейная
// @Description Выдача боеприпасов сотруднику со списанием остатка
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		armoryapimodels.AmmunitionIssueData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=armoryapimodels.AmmunitionIssueView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/ammunition/{id}/issue [post]
func (c *armoryApiController) issueAmmunition(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload armoryapimodels.AmmunitionIssueData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	view, err := armoryprovider.Instance.IssueAmmunition(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выдачи боеприпасов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список выдач боеприпасов
// @Tags Оружейная
// @Description Список выдач боеприпасов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   ammunition_type_id	query	string	false	"тип боеприпасов"
// @Success 200 {object} apimodels.Response{data=[]armoryapimodels.AmmunitionIssueView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/armory/ammunition/issues [get]
func (c *armoryApiController) listAmmunitionIssues(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	typeID := ctx.Query("ammunition_type_id")
	list, err := armoryprovider.Instance.ListAmmunitionIssues(tenantID, typeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка выдач боеприпасов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
