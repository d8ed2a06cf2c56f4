package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"police-hr-backend/controllers"
	shiftprovider "police-hr-backend/lib/shift"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	shiftapimodels "police-hr-backend/models/api/shift"
)

type shiftApiController struct {
	controllers.BaseAPIController
}

func InitShiftApiRouters(app *fiber.App) {
	controller := shiftApiController{}
	app.Route("shifts", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermShiftsRead), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermShiftsManage), controller.create)
		router.Put(":id", middleware.PermissionRequired(models.PermShiftsManage), controller.update)
		router.Get("assignments", middleware.PermissionRequired(models.PermShiftsRead), controller.listAssignments)
		router.Post("assignments", middleware.PermissionRequired(models.PermShiftsManage), controller.assignBulk)
	})
}

// @Summary Создание смены
// @Tags Смены
// @Description Создание смены
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		shiftapimodels.ShiftData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts [post]
func (c *shiftApiController) create(ctx *fiber.Ctx) error {
	var payload shiftapimodels.ShiftData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	id, err := shiftprovider.Instance.CreateShift(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список смен
// @Tags Смены
// @Description Список смен подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]shiftapimodels.ShiftView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts [get]
func (c *shiftApiController) list(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	list, err := shiftprovider.Instance.ListShifts(tenantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка смен")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обновление смены
// @Tags Смены
// @Description Обновление смены
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		shiftapimodels.ShiftData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/{id} [put]
func (c *shiftApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload shiftapimodels.ShiftData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = shiftprovider.Instance.UpdateShift(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Назначение смен
// @Tags Смены
// @Description Пакетное назначение смен сотрудникам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		shiftapimodels.AssignmentBulkData	true	"request body"
// @Success 200 {object} apimodels.Response{data=apimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/assignments [post]
func (c *shiftApiController) assignBulk(ctx *fiber.Ctx) error {
	var payload shiftapimodels.AssignmentBulkData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := shiftprovider.Instance.AssignBulk(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения смен")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Назначенные смены
// @Tags Смены
// @Description Назначенные смены с пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id	query	string	false	"сотрудник"
// @Param   shift_id	query	string	false	"смена"
// @Param   page	query	int		false	"страница"
// @Param   limit	query	int		false	"записей на странице"
// @Success 200 {object} apimodels.PagedResponse{data=[]shiftapimodels.AssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shifts/assignments [get]
func (c *shiftApiController) listAssignments(ctx *fiber.Ctx) error {
	var filter shiftapimodels.AssignmentFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, count, err := shiftprovider.Instance.ListAssignments(tenantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения назначенных смен")
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewPagedResponse(list, count, page, limit))
}
