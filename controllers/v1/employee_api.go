package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"police-hr-backend/controllers"
	employeeprovider "police-hr-backend/lib/employee"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	employeeapimodels "police-hr-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermEmployeesRead), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermEmployeesManage), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.PermissionRequired(models.PermEmployeesRead), controller.get)
			idRoute.Put("", middleware.PermissionRequired(models.PermEmployeesManage), controller.update)
			idRoute.Delete("", middleware.PermissionRequired(models.PermEmployeesManage), controller.delete)
		})
	})
}

// @Summary Создание сотрудника
// @Tags Сотрудники
// @Description Создание сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	id, err := employeeprovider.Instance.Create(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников с пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"поиск по ФИО и номеру жетона"
// @Param   page	query	int		false	"страница"
// @Param   limit	query	int		false	"записей на странице"
// @Success 200 {object} apimodels.PagedResponse{data=[]employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var filter employeeapimodels.EmployeeFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, count, err := employeeprovider.Instance.List(tenantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewPagedResponse(list, count, page, limit))
}

// @Summary Карточка сотрудника
// @Tags Сотрудники
// @Description Карточка сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	view, err := employeeprovider.Instance.Get(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Обновление сотрудника
// @Tags Сотрудники
// @Description Обновление сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.EmployeeData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = employeeprovider.Instance.Update(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление сотрудника
// @Tags Сотрудники
// @Description Удаление сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = employeeprovider.Instance.Delete(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
