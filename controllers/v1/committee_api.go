package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"police-hr-backend/controllers"
	committeeprovider "police-hr-backend/lib/committee"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	committeeapimodels "police-hr-backend/models/api/committee"
)

type committeeApiController struct {
	controllers.BaseAPIController
}

func InitCommitteeApiRouters(app *fiber.App) {
	controller := committeeApiController{}
	app.Route("committees", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermCommitteesRead), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermCommitteesManage), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.PermissionRequired(models.PermCommitteesRead), controller.get)
			idRoute.Use(middleware.PermissionRequired(models.PermCommitteesManage))
			idRoute.Post("members", controller.addMembers)
			idRoute.Delete("members/:member_id", controller.removeMember)
			idRoute.Patch("dissolve", controller.dissolve)
		})
	})
}

// @Summary Создание комиссии
// @Tags Комиссии
// @Description Создание дисциплинарной комиссии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		committeeapimodels.CommitteeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/committees [post]
func (c *committeeApiController) create(ctx *fiber.Ctx) error {
	var payload committeeapimodels.CommitteeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	id, err := committeeprovider.Instance.Create(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания комиссии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список комиссий
// @Tags Комиссии
// @Description Список комиссий с пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   only_active	query	bool	false	"только действующие"
// @Param   page	query	int		false	"страница"
// @Param   limit	query	int		false	"записей на странице"
// @Success 200 {object} apimodels.PagedResponse{data=[]committeeapimodels.CommitteeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/committees [get]
func (c *committeeApiController) list(ctx *fiber.Ctx) error {
	var filter committeeapimodels.CommitteeFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, count, err := committeeprovider.Instance.List(tenantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка комиссий")
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewPagedResponse(list, count, page, limit))
}

// @Summary Карточка комиссии
// @Tags Комиссии
// @Description Карточка комиссии с составом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=committeeapimodels.CommitteeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/committees/{id} [get]
func (c *committeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	view, err := committeeprovider.Instance.Get(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения комиссии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Включение членов комиссии
// @Tags Комиссии
// @Description Пакетное включение сотрудников в состав комиссии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		committeeapimodels.MembersBulkData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=apimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/committees/{id}/members [post]
func (c *committeeApiController) addMembers(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload committeeapimodels.MembersBulkData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := committeeprovider.Instance.AddMembers(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка включения членов комиссии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Исключение члена комиссии
// @Tags Комиссии
// @Description Исключение сотрудника из состава комиссии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Param   member_id   		path    string	true	"member ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/committees/{id}/members/{member_id} [delete]
func (c *committeeApiController) removeMember(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	memberID := ctx.Params("member_id")
	if memberID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор члена комиссии"))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = committeeprovider.Instance.RemoveMember(tenantID, id, memberID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка исключения члена комиссии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Расформирование комиссии
// @Tags Комиссии
// @Description Расформирование комиссии с деактивацией состава
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/committees/{id}/dissolve [patch]
func (c *committeeApiController) dissolve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = committeeprovider.Instance.Dissolve(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расформирования комиссии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
