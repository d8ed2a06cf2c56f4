package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "police-hr-backend/models/db"
)

// GenerateDecisionOrder приказ о наложении взыскания по делу
func GenerateDecisionOrder(rec dbmodels.Complaint, tenantName string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateDecisionOrder panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, tenantName, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("ПРИКАЗ по делу %s", rec.Number), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	_, lineHt := pdf.GetFontSize()
	lineHt *= 1.6

	employeeFIO := ""
	if rec.Employee != nil {
		employeeFIO = rec.Employee.GetFIO()
	}
	lines := []string{
		fmt.Sprintf("Сотрудник: %s", employeeFIO),
		fmt.Sprintf("Статья: %s, код проступка: %s, повторность: %d", rec.Article, rec.OffenseCode, rec.OffenseOccurrence),
		fmt.Sprintf("Вердикт: %s", rec.Finding),
	}
	if rec.PunishmentDescription != "" {
		lines = append(lines, fmt.Sprintf("Взыскание: %s", rec.PunishmentDescription))
	}
	if rec.PunishmentPercent != nil {
		lines = append(lines, fmt.Sprintf("Удержание из денежного довольствия: %.1f%%", *rec.PunishmentPercent))
	}
	if rec.DecisionDate != nil {
		lines = append(lines, fmt.Sprintf("Дата решения: %s", rec.DecisionDate.Format("02.01.2006")))
	}
	for _, line := range lines {
		pdf.MultiCell(0, lineHt, line, "", "L", false)
	}

	pdf.Ln(14)
	pdf.CellFormat(0, lineHt, "Подпись: ____________________", "", 1, "R", false, 0, "")

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}
