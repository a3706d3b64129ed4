package xlsexport

import "github.com/xuri/excelize/v2"

const (
	fontFamily  = "Times New Roman"
	fontSize    = 11
	columnWidth = 25
)

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func rangeStyle(f *excelize.File, sheet string, style int, colFrom, rowFrom, colTo, rowTo int) error {
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}

// writeHeader пишет строку заголовков и возвращает номер занятой строки
func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font: &excelize.Font{
			Bold:   true,
			Family: fontFamily,
			Size:   fontSize,
		},
	})
	if err != nil {
		return row, err
	}
	if err = rangeStyle(f, sheet, style, 1, row, len(headers), row); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return row, err
	}
	for idx, value := range headers {
		if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
		Font: &excelize.Font{
			Family: fontFamily,
			Size:   fontSize,
		},
	})
	if err != nil {
		return err
	}
	return rangeStyle(f, sheet, style, colFrom, rowFrom, colTo, rowTo)
}
