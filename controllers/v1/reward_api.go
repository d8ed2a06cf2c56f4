package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"police-hr-backend/controllers"
	rewardprovider "police-hr-backend/lib/reward"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	rewardapimodels "police-hr-backend/models/api/reward"
)

type rewardApiController struct {
	controllers.BaseAPIController
}

func InitRewardApiRouters(app *fiber.App) {
	controller := rewardApiController{}
	app.Route("rewards", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermRewardsRead), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermRewardsManage), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("eligibility/:employee_id", middleware.PermissionRequired(models.PermRewardsRead), controller.evaluate)
			idRoute.Use(middleware.PermissionRequired(models.PermRewardsManage))
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.deactivate)
		})
	})
}

// @Summary Создание награды
// @Tags Награды
// @Description Создание награды за выслугу лет
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		rewardapimodels.MilestoneData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rewards [post]
func (c *rewardApiController) create(ctx *fiber.Ctx) error {
	var payload rewardapimodels.MilestoneData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	id, err := rewardprovider.Instance.CreateMilestone(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания награды")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список наград
// @Tags Награды
// @Description Список наград за выслугу лет
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   only_active	query	bool	false	"только действующие"
// @Success 200 {object} apimodels.Response{data=[]rewardapimodels.MilestoneView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rewards [get]
func (c *rewardApiController) list(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	onlyActive := ctx.QueryBool("only_active")
	list, err := rewardprovider.Instance.ListMilestones(tenantID, onlyActive)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка наград")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обновление награды
// @Tags Награды
// @Description Обновление награды за выслугу лет
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		rewardapimodels.MilestoneData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rewards/{id} [put]
func (c *rewardApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload rewardapimodels.MilestoneData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = rewardprovider.Instance.UpdateMilestone(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления награды")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Деактивация награды
// @Tags Награды
// @Description Деактивация награды за выслугу лет
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rewards/{id} [delete]
func (c *rewardApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err = rewardprovider.Instance.DeactivateMilestone(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка деактивации награды")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Оценка права на награду
// @Tags Награды
// @Description Оценка права сотрудника на награду с учётом дисциплинарной истории
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Param   employee_id 		path    string	true	"employee ID"
// @Success 200 {object} apimodels.Response{data=rewardapimodels.EligibilityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/rewards/{id}/eligibility/{employee_id} [get]
func (c *rewardApiController) evaluate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	employeeID := ctx.Params("employee_id")
	if employeeID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор сотрудника"))
	}
	tenantID := middleware.GetTenantID(ctx)
	view, err := rewardprovider.Instance.Evaluate(tenantID, id, employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка оценки права на награду")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
