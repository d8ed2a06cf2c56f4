package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"police-hr-backend/controllers"
	attendanceprovider "police-hr-backend/lib/attendance"
	"police-hr-backend/middleware"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	attendanceapimodels "police-hr-backend/models/api/attendance"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermAttendanceRead), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermAttendanceManage), controller.save)
		router.Post("bulk", middleware.PermissionRequired(models.PermAttendanceManage), controller.saveBulk)
		router.Post("report", middleware.PermissionRequired(models.PermAttendanceManage), controller.sendReport)
	})
}

// InitDeviceApiRouters маршруты терминалов учёта, авторизация
// по ключу терминала вместо JWT. Регистрируются раньше маршрутов
// табеля, чтобы на них не распространялась JWT-авторизация группы.
func InitDeviceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance/device", func(router fiber.Router) {
		router.Use(middleware.DeviceAuthRequired())
		router.Post("clock-in", controller.deviceClockIn)
		router.Post("clock-out", controller.deviceClockOut)
	})
}

// @Summary Сохранение записи табеля
// @Tags Табель
// @Description Создание или обновление записи табеля за день
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.AttendanceData	true	"request body"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance [post]
func (c *attendanceApiController) save(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.AttendanceData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	view, err := attendanceprovider.Instance.Save(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения записи табеля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Пакетное сохранение табеля
// @Tags Табель
// @Description Пакетное создание записей табеля, ошибки собираются по позициям
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.AttendanceBulkData	true	"request body"
// @Success 200 {object} apimodels.Response{data=apimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/bulk [post]
func (c *attendanceApiController) saveBulk(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.AttendanceBulkData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := attendanceprovider.Instance.SaveBulk(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка пакетного сохранения табеля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Записи табеля
// @Tags Табель
// @Description Записи табеля с пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id	query	string	false	"сотрудник"
// @Param   date_from	query	string	false	"период с (ГГГГ-ММ-ДД)"
// @Param   date_to	query	string	false	"период по (ГГГГ-ММ-ДД)"
// @Param   page	query	int		false	"страница"
// @Param   limit	query	int		false	"записей на странице"
// @Success 200 {object} apimodels.PagedResponse{data=[]attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance [get]
func (c *attendanceApiController) list(ctx *fiber.Ctx) error {
	var filter attendanceapimodels.AttendanceFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	list, count, err := attendanceprovider.Instance.List(tenantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения записей табеля")
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewPagedResponse(list, count, page, limit))
}

// @Summary Отправка месячного отчёта
// @Tags Табель
// @Description Формирование месячного табеля и отправка на почту
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.ReportRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/report [post]
func (c *attendanceApiController) sendReport(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.ReportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetTenantID(ctx)
	err := attendanceprovider.Instance.SendMonthlyReport(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки отчёта")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отметка прихода
// @Tags Терминал
// @Description Отметка прихода сотрудника через терминал
// @Param   X-Device-Key		header		string	true	"ключ терминала"
// @Param	body				body		attendanceapimodels.DeviceClockData	true	"request body"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/device/clock-in [post]
func (c *attendanceApiController) deviceClockIn(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.DeviceClockData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetDeviceTenantID(ctx)
	deviceID := middleware.GetDeviceID(ctx)
	view, err := attendanceprovider.Instance.DeviceClockIn(tenantID, deviceID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки прихода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отметка ухода
// @Tags Терминал
// @Description Отметка ухода сотрудника через терминал
// @Param   X-Device-Key		header		string	true	"ключ терминала"
// @Param	body				body		attendanceapimodels.DeviceClockData	true	"request body"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/device/clock-out [post]
func (c *attendanceApiController) deviceClockOut(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.DeviceClockData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetDeviceTenantID(ctx)
	deviceID := middleware.GetDeviceID(ctx)
	view, err := attendanceprovider.Instance.DeviceClockOut(tenantID, deviceID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки ухода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
