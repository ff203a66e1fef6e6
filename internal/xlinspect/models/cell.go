// Package models defines the data structures produced by a workbook inspection.
package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind classifies the content of a single cell.
type Kind string

const (
	// KindEmpty is an absent or blank cell.
	KindEmpty Kind = "empty"
	// KindText is a string cell.
	KindText Kind = "text"
	// KindNumber is a numeric cell without a date format.
	KindNumber Kind = "number"
	// KindDate is a numeric cell with a date or time format, or an ISO date cell.
	KindDate Kind = "date"
	// KindBool is a TRUE/FALSE cell.
	KindBool Kind = "bool"
	// KindFormula is a formula cell, shown as its formula text.
	KindFormula Kind = "formula"
	// KindError is an Excel error literal such as #N/A.
	KindError Kind = "error"
)

// EmptyText is how an absent or blank cell is rendered.
const EmptyText = "<empty>"

// Cell is one loosely-typed cell value. It encodes to JSON as its plain
// value (see MarshalJSON).
type Cell struct {
	// Kind is the detected content type.
	Kind Kind
	// Text holds the value for text, formula and error cells.
	Text string
	// Number holds the value for number cells.
	Number float64
	// Time holds the value for date cells.
	Time time.Time
	// Bool holds the value for bool cells.
	Bool bool
}

// Empty returns a cell with no value.
func Empty() Cell { return Cell{Kind: KindEmpty} }

// TextCell returns a text cell. Blank text is treated as empty.
func TextCell(s string) Cell {
	if s == "" {
		return Empty()
	}
	return Cell{Kind: KindText, Text: s}
}

// NumberCell returns a number cell.
func NumberCell(v float64) Cell { return Cell{Kind: KindNumber, Number: v} }

// DateCell returns a date cell.
func DateCell(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }

// BoolCell returns a boolean cell.
func BoolCell(v bool) Cell { return Cell{Kind: KindBool, Bool: v} }

// FormulaCell returns a cell showing an unevaluated formula.
func FormulaCell(formula string) Cell { return Cell{Kind: KindFormula, Text: "=" + formula} }

// ErrorCell returns a cell holding an Excel error literal such as #DIV/0!.
func ErrorCell(s string) Cell { return Cell{Kind: KindError, Text: s} }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty || c.Kind == "" }

// String renders the cell value for the header listing.
func (c Cell) String() string {
	switch c.Kind {
	case KindText, KindFormula, KindError:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		if c.Time.Hour() == 0 && c.Time.Minute() == 0 && c.Time.Second() == 0 && c.Time.Nanosecond() == 0 {
			return c.Time.Format(time.DateOnly)
		}
		return c.Time.Format(time.DateTime)
	case KindBool:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return EmptyText
	}
}

// Quoted renders the cell value for a row listing, where text is quoted so
// that separators inside values stay unambiguous.
func (c Cell) Quoted() string {
	if c.Kind == KindText {
		return strconv.Quote(c.Text)
	}
	return c.String()
}

// Value returns the cell as a plain Go value: nil, string, float64, bool or time.Time.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case KindText, KindFormula, KindError:
		return c.Text
	case KindNumber:
		return c.Number
	case KindDate:
		return c.Time
	case KindBool:
		return c.Bool
	default:
		return nil
	}
}

// MarshalJSON encodes the cell as its plain value.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}

// CellRow is one sampled data row.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Values are the cells read from column 1 onward.
	Values []Cell `json:"values"`
}
