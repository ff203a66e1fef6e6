// Package parser provides the workbook readers used by the inspector.
package parser

import (
	"fmt"

	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
)

// Engine selects the library used to read a workbook.
type Engine string

const (
	// EngineExcelize reads through excelize with random cell access.
	EngineExcelize Engine = "excelize"
	// EngineStream reads rows sequentially through xlsxreader and keeps only
	// the leading rows a report needs.
	EngineStream Engine = "stream"
)

// Workbook is an opened, read-only spreadsheet.
type Workbook interface {
	// SheetList returns sheet names in workbook order.
	SheetList() []string
	// Dimension returns the extent of a sheet.
	Dimension(sheet string) (models.Dimension, error)
	// Cell returns the value at a 1-based (row, col) position.
	Cell(sheet string, row, col int) (models.Cell, error)
	// Close releases the underlying file.
	Close() error
}

// Open opens the workbook at path with the given engine. keepRows bounds how
// many leading rows the stream engine retains for Cell lookups; the excelize
// engine ignores it.
func Open(path string, engine Engine, keepRows int) (Workbook, error) {
	switch engine {
	case EngineExcelize, "":
		return openExcelize(path)
	case EngineStream:
		return openStream(path, keepRows)
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}
