package parser

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// excelizeWorkbook reads a workbook through excelize.
type excelizeWorkbook struct {
	f        *excelize.File
	date1904 bool
	formulas *formulaIndex
}

func openExcelize(path string) (*excelizeWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	wb := &excelizeWorkbook{f: f, formulas: newFormulaIndex(path)}
	props, err := f.GetWorkbookProps()
	if err != nil {
		slog.Warn("Could not read workbook properties, assuming 1900 date system.", "path", path, "error", err)
	} else if props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

func (w *excelizeWorkbook) SheetList() []string {
	return w.f.GetSheetList()
}

func (w *excelizeWorkbook) Dimension(sheet string) (models.Dimension, error) {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return models.Dimension{}, err
	}
	b := findDataBounds(rows)

	formulas, err := w.formulas.sheet(sheet)
	if err != nil {
		return models.Dimension{}, fmt.Errorf("reading formulas: %w", err)
	}
	formulas.addTo(&b)
	return b.dimension(), nil
}

func (w *excelizeWorkbook) Cell(sheet string, row, col int) (models.Cell, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}
	return readCell(w.f, sheet, cellName, w.date1904)
}

func (w *excelizeWorkbook) Close() error {
	return w.f.Close()
}
