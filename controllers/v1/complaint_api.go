package apiv1

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"police-hr-backend/controllers"
	complaintprovider "police-hr-backend/lib/complaint"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	complaintapimodels "police-hr-backend/models/api/complaint"
)

type complaintApiController struct {
	controllers.BaseAPIController
}

func InitComplaintApiRouters(app *fiber.App) {
	controller := complaintApiController{}
	app.Route("complaints", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermComplaintsRead), controller.list)
		router.Get("export", middleware.PermissionRequired(models.PermComplaintsRead), controller.export)
		router.Post("", middleware.PermissionRequired(models.PermComplaintsCreate), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.PermissionRequired(models.PermComplaintsRead), controller.get)
			idRoute.Get("timeline", middleware.PermissionRequired(models.PermComplaintsRead), controller.timeline)
			idRoute.Get("decision-pdf", middleware.PermissionRequired(models.PermComplaintsRead), controller.decisionPdf)
			idRoute.Post("decision-draft", middleware.PermissionRequired(models.PermComplaintsManage), controller.decisionDraft)

			idRoute.Use(middleware.PermissionRequired(models.PermComplaintsManage))
			idRoute.Patch("notification", controller.recordNotification)
			idRoute.Patch("rebuttal", controller.recordRebuttal)
			idRoute.Patch("rebuttal-deadline", controller.rebuttalDeadlinePassed)
			idRoute.Patch("finding", controller.recordFinding)
			idRoute.Patch("decision", controller.recordDecision)
			idRoute.Patch("assign-committee", controller.assignCommittee)
			idRoute.Patch("forward-to-hq", controller.forwardToHq)
			idRoute.Patch("hq-decision", controller.recordHqDecision)
			idRoute.Patch("close", controller.close)
			idRoute.Route("appeals", func(appealRoute fiber.Router) {
				appealRoute.Get("", controller.listAppeals)
				appealRoute.Post("", controller.submitAppeal)
				appealRoute.Patch(":appeal_id", controller.decideAppeal)
			})
			idRoute.Route("documents", func(docRoute fiber.Router) {
				docRoute.Get("", controller.listDocuments)
				docRoute.Post("", controller.uploadDocument)
				docRoute.Get(":document_id", controller.downloadDocument)
			})
		})
	})
}

// @Summary Регистрация дисциплинарного дела
// @Tags Дисциплинарные дела
// @Description Регистрация дисциплинарного дела
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.ComplaintCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints [post]
func (c *complaintApiController) create(ctx *fiber.Ctx) error {
	var payload complaintapimodels.ComplaintCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.Create(tenantID, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации дела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список дисциплинарных дел
// @Tags Дисциплинарные дела
// @Description Список дисциплинарных дел с пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status	query	string	false	"статус дела"
// @Param   article	query	string	false	"статья"
// @Param   employee_id	query	string	false	"сотрудник"
// @Param   page	query	int		false	"страница"
// @Param   limit	query	int		false	"записей на странице"
// @Success 200 {object} apimodels.PagedResponse{data=[]complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints [get]
func (c *complaintApiController) list(ctx *fiber.Ctx) error {
	var filter complaintapimodels.ComplaintFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, count, err := complaintprovider.Instance.List(tenantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка дел")
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewPagedResponse(list, count, page, limit))
}

// @Summary Карточка дела
// @Tags Дисциплинарные дела
// @Description Карточка дела
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id} [get]
func (c *complaintApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	view, err := complaintprovider.Instance.Get(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения дела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary История дела
// @Tags Дисциплинарные дела
// @Description История изменений статуса дела
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]complaintapimodels.TimelineView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/timeline [get]
func (c *complaintApiController) timeline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, err := complaintprovider.Instance.GetTimeline(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории дела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Фиксация уведомления сотрудника
// @Tags Дисциплинарные дела
// @Description Фиксация уведомления сотрудника о деле
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.NotificationData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/notification [patch]
func (c *complaintApiController) recordNotification(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.NotificationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.RecordNotification(tenantID, id, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации уведомления")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Фиксация объяснения сотрудника
// @Tags Дисциплинарные дела
// @Description Фиксация объяснения сотрудника по делу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.RebuttalData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/rebuttal [patch]
func (c *complaintApiController) recordRebuttal(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.RebuttalData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.RecordRebuttal(tenantID, id, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации объяснения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Истечение срока объяснения
// @Tags Дисциплинарные дела
// @Description Фиксация истечения срока предоставления объяснения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/rebuttal-deadline [patch]
func (c *complaintApiController) rebuttalDeadlinePassed(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.RebuttalDeadlinePassed(tenantID, id, userID, userName)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации истечения срока")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Вердикт по делу
// @Tags Дисциплинарные дела
// @Description Фиксация вердикта по итогам разбирательства
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.FindingData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/finding [patch]
func (c *complaintApiController) recordFinding(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.FindingData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.RecordFinding(tenantID, id, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации вердикта")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Решение руководителя
// @Tags Дисциплинарные дела
// @Description Решение прямого руководителя о взыскании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.DecisionData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/decision [patch]
func (c *complaintApiController) recordDecision(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.RecordDecision(tenantID, id, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации решения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Назначение комиссии
// @Tags Дисциплинарные дела
// @Description Назначение дисциплинарной комиссии по делу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.AssignCommitteeData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/assign-committee [patch]
func (c *complaintApiController) assignCommittee(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.AssignCommitteeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.AssignCommittee(tenantID, id, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения комиссии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Направление в центральный аппарат
// @Tags Дисциплинарные дела
// @Description Направление дела в комиссию центрального аппарата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.ForwardToHqData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/forward-to-hq [patch]
func (c *complaintApiController) forwardToHq(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.ForwardToHqData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.ForwardToHq(tenantID, id, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка направления дела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Решение центрального аппарата
// @Tags Дисциплинарные дела
// @Description Решение комиссии центрального аппарата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.DecisionData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/hq-decision [patch]
func (c *complaintApiController) recordHqDecision(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.RecordHqDecision(tenantID, id, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации решения центрального аппарата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Закрытие дела
// @Tags Дисциплинарные дела
// @Description Окончательное закрытие дела
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.CloseData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.ComplaintView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/close [patch]
func (c *complaintApiController) close(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.CloseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.Close(tenantID, id, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка закрытия дела")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Подача обжалования
// @Tags Дисциплинарные дела
// @Description Подача обжалования решения по делу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.AppealCreateData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.AppealView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/appeals [post]
func (c *complaintApiController) submitAppeal(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.AppealCreateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.SubmitAppeal(tenantID, id, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подачи обжалования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Решение по обжалованию
// @Tags Дисциплинарные дела
// @Description Решение по поданному обжалованию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.AppealDecisionData	true	"request body"
// @Param   id          		path    string	true	"rec ID"
// @Param   appeal_id   		path    string	true	"appeal ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.AppealView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/appeals/{appeal_id} [patch]
func (c *complaintApiController) decideAppeal(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	appealID := ctx.Params("appeal_id")
	if appealID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор обжалования"))
	}
	var payload complaintapimodels.AppealDecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	view, err := complaintprovider.Instance.DecideAppeal(tenantID, id, appealID, userID, userName, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка фиксации решения по обжалованию")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список обжалований
// @Tags Дисциплинарные дела
// @Description Список обжалований по делу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]complaintapimodels.AppealView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/appeals [get]
func (c *complaintApiController) listAppeals(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, err := complaintprovider.Instance.ListAppeals(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка обжалований")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Загрузка документа
// @Tags Дисциплинарные дела
// @Description Загрузка документа по делу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"файл документа"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=complaintapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/documents [post]
func (c *complaintApiController) uploadDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("ошибка при получении файла документа")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	data, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения файла документа")
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	userName := middleware.GetUserName(ctx)
	contentType := file.Header.Get(fiber.HeaderContentType)
	view, err := complaintprovider.Instance.UploadDocument(ctx.UserContext(), tenantID, id, userID, userName, file.Filename, contentType, data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список документов
// @Tags Дисциплинарные дела
// @Description Список документов по делу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]complaintapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/documents [get]
func (c *complaintApiController) listDocuments(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, err := complaintprovider.Instance.ListDocuments(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачивание документа
// @Tags Дисциплинарные дела
// @Description Скачивание документа по делу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Param   document_id 		path    string	true	"document ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/documents/{document_id} [get]
func (c *complaintApiController) downloadDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	documentID := ctx.Params("document_id")
	if documentID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор документа"))
	}
	tenantID := middleware.GetTenantID(ctx)
	fileName, contentType, data, err := complaintprovider.Instance.DownloadDocument(ctx.UserContext(), tenantID, id, documentID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания документа")
	}
	if contentType != "" {
		ctx.Set(fiber.HeaderContentType, contentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}

// @Summary Проект решения
// @Tags Дисциплинарные дела
// @Description Генерация проекта решения по материалам дела
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/decision-draft [post]
func (c *complaintApiController) decisionDraft(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	draft, err := complaintprovider.Instance.GenerateDecisionDraft(ctx.UserContext(), tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации проекта решения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(draft))
}

// @Summary Выгрузка реестра дел
// @Tags Дисциплинарные дела
// @Description Выгрузка реестра дел в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status	query	string	false	"статус дела"
// @Param   article	query	string	false	"статья"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/export [get]
func (c *complaintApiController) export(ctx *fiber.Ctx) error {
	var filter complaintapimodels.ComplaintFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	data, err := complaintprovider.Instance.Export(tenantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра дел")
	}
	fileName := fmt.Sprintf("complaints-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Приказ по делу
// @Tags Дисциплинарные дела
// @Description Формирование приказа по делу в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string	true	"rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/complaints/{id}/decision-pdf [get]
func (c *complaintApiController) decisionPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	fileName, data, err := complaintprovider.Instance.DecisionOrderPdf(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования приказа")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}
