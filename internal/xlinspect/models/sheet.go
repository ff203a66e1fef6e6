package models

// Dimension describes the extent of a sheet's grid.
type Dimension struct {
	// MaxRow is the highest row index holding a value (1-based, 0 when empty).
	MaxRow int `json:"max_row"`
	// MaxColumn is the highest column index holding a value (1-based, 0 when empty).
	MaxColumn int `json:"max_column"`
	// UsedRange is the bounding box of non-empty cells (e.g., "A1:D10").
	UsedRange string `json:"used_range,omitempty"`
}

// SheetSummary represents the inspected structure of a single sheet.
type SheetSummary struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Dimension is the sheet's extent.
	Dimension Dimension `json:"dimension"`
	// Headers contains the values of row 1.
	Headers []Cell `json:"headers"`
	// DataRows contains the sampled rows following the header row.
	DataRows []CellRow `json:"data_rows"`
}
