// Package xlinspect inspects the structure of Excel workbooks.
package xlinspect

import (
	"fmt"

	"github.com/ukaji3/xlinspect-go/internal/xlinspect/parser"
)

// DefaultPath is the workbook inspected when no path is given.
const DefaultPath = `C:\Users\smhar\Downloads\98047 Modern Workspace modernization Financial Tracker.xlsx`

// Format represents the report rendering.
type Format string

const (
	// FormatText renders the human-readable structure report.
	FormatText Format = "text"
	// FormatJSON renders the report as JSON.
	FormatJSON Format = "json"
	// FormatTOON renders the report as TOON.
	FormatTOON Format = "toon"
)

// Options configures inspection and rendering.
type Options struct {
	// Engine selects the workbook reader.
	Engine parser.Engine
	// Format selects the report rendering.
	Format Format
	// Pretty indents JSON output.
	Pretty bool
	// MaxColumns bounds how many columns are read from the header row and
	// from each sampled data row.
	MaxColumns int
	// SampleRows is the number of data rows sampled after the header row.
	SampleRows int
	// PreviewColumns is how many of a sampled row's values the text report prints.
	PreviewColumns int
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		Engine:         parser.EngineExcelize,
		Format:         FormatText,
		MaxColumns:     20,
		SampleRows:     5,
		PreviewColumns: 10,
	}
}

// Validate checks option values.
func (o Options) Validate() error {
	switch o.Engine {
	case parser.EngineExcelize, parser.EngineStream:
	default:
		return fmt.Errorf("invalid engine: %s (must be excelize or stream)", o.Engine)
	}
	switch o.Format {
	case FormatText, FormatJSON, FormatTOON:
	default:
		return fmt.Errorf("invalid format: %s (must be text, json, or toon)", o.Format)
	}
	if o.MaxColumns < 1 {
		return fmt.Errorf("max columns must be at least 1, got %d", o.MaxColumns)
	}
	if o.SampleRows < 0 {
		return fmt.Errorf("sample rows must not be negative, got %d", o.SampleRows)
	}
	if o.PreviewColumns < 1 {
		return fmt.Errorf("preview columns must be at least 1, got %d", o.PreviewColumns)
	}
	return nil
}

// lastSampleRow returns the last row index a report may read.
func (o Options) lastSampleRow() int {
	return o.SampleRows + 1
}
