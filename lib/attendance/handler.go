package attendanceprovider

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"police-hr-backend/db"
	attendancestore "police-hr-backend/lib/attendance/store"
	employeestore "police-hr-backend/lib/employee/store"
	xlsexport "police-hr-backend/lib/export/xls"
	"police-hr-backend/lib/mailer"
	shiftstore "police-hr-backend/lib/shift/store"
	settingsstore "police-hr-backend/lib/tenant/settings-store"
	"police-hr-backend/lib/utils/helpers"
	initchecker "police-hr-backend/lib/utils/init-checker"
	"police-hr-backend/models"
	apimodels "police-hr-backend/models/api"
	attendanceapimodels "police-hr-backend/models/api/attendance"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	Save(tenantID string, request attendanceapimodels.AttendanceData) (view attendanceapimodels.AttendanceView, err error)
	SaveBulk(tenantID string, request attendanceapimodels.AttendanceBulkData) (result apimodels.BulkResult, err error)
	List(tenantID string, filter attendanceapimodels.AttendanceFilter) (list []attendanceapimodels.AttendanceView, count int64, err error)
	DeviceClockIn(tenantID, deviceID string, request attendanceapimodels.DeviceClockData) (view attendanceapimodels.AttendanceView, err error)
	DeviceClockOut(tenantID, deviceID string, request attendanceapimodels.DeviceClockData) (view attendanceapimodels.AttendanceView, err error)
	SendMonthlyReport(tenantID string, request attendanceapimodels.ReportRequest) error
	BuildReportRows(tenantID string, year, month int) (rows []attendanceapimodels.ReportRow, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         attendancestore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		shiftStore:    shiftstore.NewInstance(db.DB),
		settingsStore: settingsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
		"shiftStore", instance.shiftStore,
		"settingsStore", instance.settingsStore,
	)
	Instance = instance
}

type impl struct {
	store         attendancestore.Provider
	employeeStore employeestore.Provider
	shiftStore    shiftstore.Provider
	settingsStore settingsstore.Provider
}

// Save ручная запись табеля, существующая запись за день перезаписывается
func (i impl) Save(tenantID string, request attendanceapimodels.AttendanceData) (view attendanceapimodels.AttendanceView, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	employee, err := i.employeeStore.GetByID(tenantID, request.EmployeeID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return view, models.NewBadRequestError("сотрудник не найден")
	}
	day := helpers.DayStart(request.Day)
	rec, err := i.store.GetByEmployeeDay(tenantID, request.EmployeeID, day)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения записи табеля")
	}
	if rec == nil {
		rec = &dbmodels.AttendanceRecord{
			BaseTenantModel: dbmodels.BaseTenantModel{
				TenantID: tenantID,
			},
			EmployeeID: request.EmployeeID,
			Day:        day,
		}
	}
	rec.ClockIn = request.ClockIn
	rec.ClockOut = request.ClockOut
	rec.Note = request.Note
	i.fillDerived(tenantID, rec)
	id, err := i.store.Create(*rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка сохранения записи табеля")
	}
	logger.
		WithField("employee_id", request.EmployeeID).
		WithField("rec_id", id).
		Info("сохранена запись табеля")
	saved, err := i.store.GetByID(tenantID, id)
	if err != nil || saved == nil {
		return attendanceapimodels.AttendanceConvert(*rec), nil
	}
	return attendanceapimodels.AttendanceConvert(*saved), nil
}

func (i impl) SaveBulk(tenantID string, request attendanceapimodels.AttendanceBulkData) (result apimodels.BulkResult, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return apimodels.BulkResult{}, models.NewBadRequestError(err.Error())
	}
	for idx, record := range request.Records {
		_, err := i.Save(tenantID, record)
		if err != nil {
			if models.IsBadRequest(err) {
				result.AddError(idx, err.Error())
				continue
			}
			return apimodels.BulkResult{}, err
		}
		result.Created++
	}
	logger.
		WithField("created", result.Created).
		WithField("failed", result.Failed).
		Info("загружены записи табеля")
	return result, nil
}

func (i impl) List(tenantID string, filter attendanceapimodels.AttendanceFilter) (list []attendanceapimodels.AttendanceView, count int64, err error) {
	count, err = i.store.ListCount(tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(tenantID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения табеля")
	}
	list = make([]attendanceapimodels.AttendanceView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, attendanceapimodels.AttendanceConvert(rec))
	}
	return list, count, nil
}

func (i impl) DeviceClockIn(tenantID, deviceID string, request attendanceapimodels.DeviceClockData) (view attendanceapimodels.AttendanceView, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("device_id", deviceID)
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	employee, err := i.employeeStore.GetByBadge(tenantID, request.BadgeNumber)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return view, models.NewBadRequestError("сотрудник с таким номером жетона не найден")
	}
	now := time.Now()
	day := helpers.DayStart(now)
	rec, err := i.store.GetByEmployeeDay(tenantID, employee.ID, day)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения записи табеля")
	}
	if rec != nil && rec.ClockIn != nil {
		return view, models.NewBadRequestError("приход уже зафиксирован")
	}
	if rec == nil {
		rec = &dbmodels.AttendanceRecord{
			BaseTenantModel: dbmodels.BaseTenantModel{
				TenantID: tenantID,
			},
			EmployeeID: employee.ID,
			Day:        day,
		}
	}
	rec.ClockIn = &now
	rec.DeviceID = &deviceID
	rec.LateMinutes = i.lateMinutes(tenantID, employee.ID, now)
	id, err := i.store.Create(*rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка фиксации прихода")
	}
	logger.
		WithField("employee_id", employee.ID).
		WithField("rec_id", id).
		Info("зафиксирован приход")
	rec.ID = id
	return attendanceapimodels.AttendanceConvert(*rec), nil
}

func (i impl) DeviceClockOut(tenantID, deviceID string, request attendanceapimodels.DeviceClockData) (view attendanceapimodels.AttendanceView, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("device_id", deviceID)
	if err = request.Validate(); err != nil {
		return view, models.NewBadRequestError(err.Error())
	}
	employee, err := i.employeeStore.GetByBadge(tenantID, request.BadgeNumber)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return view, models.NewBadRequestError("сотрудник с таким номером жетона не найден")
	}
	now := time.Now()
	day := helpers.DayStart(now)
	rec, err := i.store.GetByEmployeeDay(tenantID, employee.ID, day)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения записи табеля")
	}
	if rec == nil || rec.ClockIn == nil {
		return view, models.NewBadRequestError("приход не зафиксирован")
	}
	if rec.ClockOut != nil {
		return view, models.NewBadRequestError("уход уже зафиксирован")
	}
	worked, overtime := CalcHours(*rec.ClockIn, now)
	err = i.store.Update(tenantID, rec.ID, map[string]interface{}{
		"clock_out":      now,
		"device_id":      deviceID,
		"worked_hours":   worked,
		"overtime_hours": overtime,
	})
	if err != nil {
		return view, errors.Wrap(err, "ошибка фиксации ухода")
	}
	logger.
		WithField("employee_id", employee.ID).
		WithField("rec_id", rec.ID).
		Info("зафиксирован уход")
	saved, err := i.store.GetByID(tenantID, rec.ID)
	if err != nil || saved == nil {
		rec.ClockOut = &now
		rec.WorkedHours = worked
		rec.OvertimeHours = overtime
		return attendanceapimodels.AttendanceConvert(*rec), nil
	}
	return attendanceapimodels.AttendanceConvert(*saved), nil
}

// BuildReportRows месячный табель, агрегация по сотрудникам
func (i impl) BuildReportRows(tenantID string, year, month int) (rows []attendanceapimodels.ReportRow, err error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	recList, err := i.store.ListRange(tenantID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения табеля за период")
	}
	byEmployee := map[string]*attendanceapimodels.ReportRow{}
	order := []string{}
	for _, rec := range recList {
		row, ok := byEmployee[rec.EmployeeID]
		if !ok {
			row = &attendanceapimodels.ReportRow{}
			if rec.Employee != nil {
				row.BadgeNumber = rec.Employee.BadgeNumber
				row.EmployeeFIO = rec.Employee.GetFIO()
			}
			byEmployee[rec.EmployeeID] = row
			order = append(order, rec.EmployeeID)
		}
		if rec.WorkedHours > 0 {
			row.DaysWorked++
		}
		row.WorkedHours += rec.WorkedHours
		row.OvertimeHours += rec.OvertimeHours
		if rec.LateMinutes > 0 {
			row.LateCount++
			row.LateMinutes += rec.LateMinutes
		}
	}
	rows = make([]attendanceapimodels.ReportRow, 0, len(order))
	for _, employeeID := range order {
		rows = append(rows, *byEmployee[employeeID])
	}
	return rows, nil
}

func (i impl) SendMonthlyReport(tenantID string, request attendanceapimodels.ReportRequest) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("period", fmt.Sprintf("%02d.%d", request.Month, request.Year))
	if err := request.Validate(); err != nil {
		return models.NewBadRequestError(err.Error())
	}
	email := request.Email
	if email == "" {
		value, err := i.settingsStore.GetValueByCode(tenantID, models.TenantReportEmail)
		if err != nil {
			return errors.Wrap(err, "ошибка получения почты для отчётов")
		}
		email = value
	}
	if email == "" {
		return models.NewBadRequestError("не указана почта для отправки отчёта")
	}
	rows, err := i.BuildReportRows(tenantID, request.Year, request.Month)
	if err != nil {
		return err
	}
	buf, err := xlsexport.Instance.ExportAttendanceReport(request.Year, request.Month, rows)
	if err != nil {
		return errors.Wrap(err, "ошибка формирования отчёта")
	}
	sender, err := i.settingsStore.GetValueByCode(tenantID, models.TenantSenderEmail)
	if err != nil {
		return errors.Wrap(err, "ошибка получения почты отправителя")
	}
	subject := fmt.Sprintf("Табель за %02d.%d", request.Month, request.Year)
	fileName := fmt.Sprintf("attendance_%d_%02d.xlsx", request.Year, request.Month)
	err = mailer.Instance.SendWithAttachment(sender, email, subject, "Месячный табель во вложении.", fileName, buf.Bytes())
	if err != nil {
		return err
	}
	logger.Info("отправлен месячный табель")
	return nil
}

func (i impl) fillDerived(tenantID string, rec *dbmodels.AttendanceRecord) {
	rec.WorkedHours = 0
	rec.OvertimeHours = 0
	rec.LateMinutes = 0
	if rec.ClockIn == nil {
		return
	}
	rec.LateMinutes = i.lateMinutes(tenantID, rec.EmployeeID, *rec.ClockIn)
	if rec.ClockOut != nil {
		rec.WorkedHours, rec.OvertimeHours = CalcHours(*rec.ClockIn, *rec.ClockOut)
	}
}

func (i impl) lateMinutes(tenantID, employeeID string, clockIn time.Time) int {
	assignment, err := i.shiftStore.GetAssignment(tenantID, employeeID, helpers.DayStart(clockIn))
	if err != nil {
		log.WithError(err).Error("ошибка получения назначенной смены")
		return 0
	}
	if assignment == nil || assignment.Shift == nil {
		return 0
	}
	return CalcLateMinutes(clockIn, assignment.Shift.StartTime)
}
