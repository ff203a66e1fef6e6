package parser

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/thedatashed/xlsxreader"
	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// streamWorkbook reads a workbook row by row through xlsxreader. Each sheet is
// scanned once; the scan records the sheet's bounds and retains the cells of
// the first keepRows rows. Formula cells come from the formula index, so a
// formula shows as its formula text like it does through excelize.
type streamWorkbook struct {
	xl       *xlsxreader.XlsxFileCloser
	keepRows int
	formulas *formulaIndex
	sheets   map[string]*streamSheet
}

type streamSheet struct {
	dim      models.Dimension
	cells    map[int]map[int]models.Cell
	formulas sheetFormulas
}

func openStream(path string, keepRows int) (*streamWorkbook, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &streamWorkbook{
		xl:       xl,
		keepRows: keepRows,
		formulas: newFormulaIndex(path),
		sheets:   make(map[string]*streamSheet),
	}, nil
}

func (w *streamWorkbook) SheetList() []string {
	return append([]string(nil), w.xl.Sheets...)
}

func (w *streamWorkbook) Dimension(sheet string) (models.Dimension, error) {
	s, err := w.scan(sheet)
	if err != nil {
		return models.Dimension{}, err
	}
	return s.dim, nil
}

func (w *streamWorkbook) Cell(sheet string, row, col int) (models.Cell, error) {
	s, err := w.scan(sheet)
	if err != nil {
		return models.Cell{}, err
	}
	if row > w.keepRows {
		return models.Cell{}, fmt.Errorf("row %d of sheet %q was not retained (keeping %d rows)", row, sheet, w.keepRows)
	}
	if formula := s.formulas[cellPos{row: row, col: col}]; formula != "" {
		return models.FormulaCell(formula), nil
	}
	if c, ok := s.cells[row][col]; ok {
		return c, nil
	}
	return models.Empty(), nil
}

func (w *streamWorkbook) Close() error {
	return w.xl.Close()
}

func (w *streamWorkbook) scan(sheet string) (*streamSheet, error) {
	if s, ok := w.sheets[sheet]; ok {
		return s, nil
	}
	if !w.hasSheet(sheet) {
		return nil, fmt.Errorf("sheet %s does not exist", sheet)
	}

	s := &streamSheet{cells: make(map[int]map[int]models.Cell)}
	var b bounds
	var scanErr error
	rowCount := 0

	// The channel is always drained so the reader goroutine can exit.
	for row := range w.xl.ReadRows(sheet) {
		if scanErr != nil {
			continue
		}
		if row.Error != nil {
			scanErr = fmt.Errorf("reading row %d: %w", row.Index, row.Error)
			continue
		}
		rowCount++
		for _, cell := range row.Cells {
			col, err := excelize.ColumnNameToNumber(cell.Column)
			if err != nil {
				scanErr = fmt.Errorf("row %d: %w", row.Index, err)
				break
			}
			v := streamCell(cell)
			if v.IsEmpty() {
				continue
			}
			b.add(row.Index, col)
			if row.Index <= w.keepRows {
				if s.cells[row.Index] == nil {
					s.cells[row.Index] = make(map[int]models.Cell)
				}
				s.cells[row.Index][col] = v
			}
		}
	}
	if scanErr != nil {
		return nil, scanErr
	}

	formulas, err := w.formulas.sheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading formulas: %w", err)
	}
	formulas.addTo(&b)
	s.formulas = formulas

	s.dim = b.dimension()
	w.sheets[sheet] = s
	slog.Debug("Sheet scanned.", "sheet", sheet, "rows_read", rowCount, "max_row", s.dim.MaxRow, "max_column", s.dim.MaxColumn)
	return s, nil
}

func (w *streamWorkbook) hasSheet(sheet string) bool {
	for _, name := range w.xl.Sheets {
		if name == sheet {
			return true
		}
	}
	return false
}

// streamCell classifies a cell reported by xlsxreader.
func streamCell(c xlsxreader.Cell) models.Cell {
	if c.Value == "" {
		return models.Empty()
	}
	switch c.Type {
	case xlsxreader.TypeBoolean:
		return models.BoolCell(parseBool(c.Value))
	case xlsxreader.TypeNumerical:
		if v, ok := parseNumber(c.Value); ok {
			return models.NumberCell(v)
		}
	case xlsxreader.TypeDateTime:
		if t, ok := parseStreamDate(c.Value); ok {
			return models.DateCell(t)
		}
	}
	return models.TextCell(c.Value)
}

// parseStreamDate parses the value xlsxreader renders for date-styled cells:
// RFC 3339 when there is a time part, a plain date otherwise.
func parseStreamDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
