package xlsexport

import "github.com/xuri/excelize/v2"

// sheetWriter обёртка над excelize для построчного заполнения листа
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func (w *sheetWriter) writeCell(col int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		return err
	}
	return w.f.SetCellValue(w.sheet, cell, value)
}

func (w *sheetWriter) writeRow(values ...interface{}) error {
	w.row++
	for idx, value := range values {
		if value == nil {
			continue
		}
		if err := w.writeCell(idx+1, value); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeHeader(headers []string) error {
	w.row++
	style, err := w.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Font: &excelize.Font{
			Bold:   true,
			Family: "Times New Roman",
			Size:   11,
		},
	})
	if err != nil {
		return err
	}
	if err = w.styleRange(style, 1, w.row, len(headers), w.row); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err = w.f.SetColWidth(w.sheet, "A", lastCol, 25); err != nil {
		return err
	}
	for idx, value := range headers {
		if err = w.writeCell(idx+1, value); err != nil {
			return err
		}
	}
	return nil
}

// styleData стиль для области данных под текущей строкой
func (w *sheetWriter) styleData(cols, rows int) error {
	style, err := w.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Family: "Times New Roman",
			Size:   11,
		},
	})
	if err != nil {
		return err
	}
	return w.styleRange(style, 1, w.row+1, cols, w.row+rows)
}

func (w *sheetWriter) styleRange(style, colFrom, rowFrom, colTo, rowTo int) error {
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, cellFirst, cellLast, style)
}
