package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	attendanceapimodels "police-hr-backend/models/api/attendance"
	dbmodels "police-hr-backend/models/db"
)

type Provider interface {
	ExportComplaintList(list []dbmodels.Complaint) (*bytes.Buffer, error)
	ExportAttendanceReport(year, month int, rows []attendanceapimodels.ReportRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var complaintHeaders = []string{"Номер дела", "Статья", "Код проступка", "Сотрудник", "Повторность", "Тяжесть", "Статус", "Вердикт", "Дата создания", "Дата решения"}

func (i impl) ExportComplaintList(list []dbmodels.Complaint) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	w := &sheetWriter{f: f, sheet: "Sheet1"}
	if err := w.writeHeader(complaintHeaders); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err := w.styleData(len(complaintHeaders), len(list)); err != nil {
			return nil, err
		}
		for _, item := range list {
			employeeFIO := ""
			if item.Employee != nil {
				employeeFIO = item.Employee.GetFIO()
			}
			decisionDate := ""
			if item.DecisionDate != nil {
				decisionDate = item.DecisionDate.Format("02.01.2006")
			}
			err := w.writeRow(
				item.Number,
				string(item.Article),
				item.OffenseCode,
				employeeFIO,
				item.OffenseOccurrence,
				string(item.SeverityLevel),
				item.Status.ToHuman(),
				string(item.Finding),
				item.CreatedAt.Format("02.01.2006"),
				decisionDate,
			)
			if err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	f.SetSheetName(w.sheet, "Дисциплинарные дела")
	return f.WriteToBuffer()
}

var attendanceHeaders = []string{"Номер жетона", "ФИО", "Отработано дней", "Отработано часов", "Сверхурочные часы", "Опозданий", "Минут опозданий"}

func (i impl) ExportAttendanceReport(year, month int, rows []attendanceapimodels.ReportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	w := &sheetWriter{f: f, sheet: "Sheet1"}
	if err := w.writeHeader(attendanceHeaders); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(rows) != 0 {
		if err := w.styleData(len(attendanceHeaders), len(rows)); err != nil {
			return nil, err
		}
		for _, item := range rows {
			err := w.writeRow(
				item.BadgeNumber,
				item.EmployeeFIO,
				item.DaysWorked,
				item.WorkedHours,
				item.OvertimeHours,
				item.LateCount,
				item.LateMinutes,
			)
			if err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	f.SetSheetName(w.sheet, fmt.Sprintf("Табель %02d.%d", month, year))
	return f.WriteToBuffer()
}
