package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"police-hr-backend/controllers"
	inventoryprovider "police-hr-backend/lib/inventory"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	inventoryapimodels "police-hr-backend/models/api/inventory"
)

type inventoryApiController struct {
	controllers.BaseAPIController
}

func InitInventoryApiRouters(app *fiber.App) {
	controller := inventoryApiController{}
	app.Route("inventory", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermInventoryRead), controller.list)
		router.Get("issues", middleware.PermissionRequired(models.PermInventoryRead), controller.listIssues)
		router.Use(middleware.PermissionRequired(models.PermInventoryManage))
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Post(":id/issue", controller.issue)
		router.Patch("issues/:id/return", controller.returnIssue)
	})
}

// @Summary Создание позиции склада
// @Tags Склад
// @Description Создание позиции склада
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		inventoryapimodels.ItemData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/inventory [post]
func (c *inventoryApiController) create(ctx *fiber.Ctx) error {
	var payload inventoryapimodels.ItemData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	id, err := inventoryprovider.Instance.CreateItem(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания позиции склада")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Позиции склада
// @Tags Склад
// @Description Позиции склада с пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"поиск по названию и коду"
// @Param   page	query	int		false	"страница"
// @Param   limit	query	int		false	"записей на странице"
// @Success 200 {object} apimodels.PagedResponse{data=[]inventoryapimodels.ItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/inventory [get]
func (c *inventoryApiController) list(ctx *fiber.Ctx) error {
	var filter inventoryapimodels.ItemFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, count, err := inventoryprovider.Instance.ListItems(tenantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения позиций склада")
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewPagedResponse(list, count, page, limit))
}

// @Summary Обновление позиции склада
// @Tags Склад
// @Description Обновление позиции склада
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		inventoryapimodels.ItemData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/inventory/{id} [put]
func (c *inventoryApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload inventoryapimodels.ItemData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = inventoryprovider.Instance.UpdateItem(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления позиции склада")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выдача со склада
// @Tags Склад
// @Description Выдача позиции склада сотруднику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		inventoryapimodels.IssueData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=inventoryapimodels.IssueView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/inventory/{id}/issue [post]
func (c *inventoryApiController) issue(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload inventoryapimodels.IssueData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	view, err := inventoryprovider.Instance.Issue(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выдачи со склада")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Возврат на склад
// @Tags Склад
// @Description Возврат выданной позиции на склад
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"issue ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/inventory/issues/{id}/return [patch]
func (c *inventoryApiController) returnIssue(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = inventoryprovider.Instance.Return(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка возврата на склад")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список выдач
// @Tags Склад
// @Description Список выдач со склада
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   item_id	query	string	false	"позиция склада"
// @Success 200 {object} apimodels.Response{data=[]inventoryapimodels.IssueView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/inventory/issues [get]
func (c *inventoryApiController) listIssues(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	itemID := ctx.Query("item_id")
	list, err := inventoryprovider.Instance.ListIssues(tenantID, itemID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка выдач")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
