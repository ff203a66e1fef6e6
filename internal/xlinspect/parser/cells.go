package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// readCell reads and classifies a single cell through excelize.
// Formula cells are reported as their formula text, not the cached result.
func readCell(f *excelize.File, sheetName, cellName string, date1904 bool) (models.Cell, error) {
	formula, err := f.GetCellFormula(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}
	if formula != "" {
		return models.FormulaCell(formula), nil
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}
	raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Cell{}, err
	}
	if raw == "" {
		return models.Empty(), nil
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.BoolCell(parseBool(raw)), nil
	case excelize.CellTypeError:
		return models.ErrorCell(raw), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return models.DateCell(t), nil
		}
		return models.TextCell(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.TextCell(raw), nil
	}

	v, ok := parseNumber(raw)
	if !ok {
		return models.TextCell(raw), nil
	}
	isDate, err := hasDateFormat(f, sheetName, cellName)
	if err != nil {
		return models.Cell{}, err
	}
	if isDate {
		if t, err := excelize.ExcelDateToTime(v, date1904); err == nil {
			return models.DateCell(t), nil
		}
	}
	return models.NumberCell(v), nil
}

// parseNumber attempts to parse a raw cell value as a number.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseBool(s string) bool {
	return s == "1" || strings.EqualFold(s, "true")
}

// hasDateFormat reports whether the cell's style applies a date or time
// number format.
func hasDateFormat(f *excelize.File, sheetName, cellName string) (bool, error) {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false, err
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		return isDateFormatCode(*style.CustomNumFmt), nil
	}
	return isBuiltInDateFormat(style.NumFmt), nil
}

// isBuiltInDateFormat reports whether a built-in number format id is a date
// or time format. Ids 27-36 and 50-58 are the CJK locale date formats.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code renders a date
// or time. Only the first section (positive numbers) is considered; quoted
// literals, escapes and bracketed colors or conditions are ignored, but
// elapsed-time brackets such as [h] count.
func isDateFormatCode(code string) bool {
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	var b strings.Builder
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch ch {
		case '"':
			end := strings.IndexByte(code[i+1:], '"')
			if end < 0 {
				i = len(code)
			} else {
				i += end + 1
			}
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(code[i+1:], ']')
			if end < 0 {
				i = len(code)
				continue
			}
			inner := strings.ToLower(code[i+1 : i+1+end])
			if strings.Trim(inner, "hms") == "" {
				b.WriteString(inner)
			}
			i += end + 1
		default:
			b.WriteByte(ch)
		}
	}

	return strings.ContainsAny(strings.ToLower(b.String()), "ymdhs")
}
