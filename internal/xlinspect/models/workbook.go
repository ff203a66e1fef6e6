package models

// Report is the workbook-level result of an inspection.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Path is the path the workbook was loaded from.
	Path string `json:"path"`
	// Engine names the reader that produced the report.
	Engine string `json:"engine"`
	// SheetNames lists the sheets in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheets holds one summary per sheet, in the same order as SheetNames.
	Sheets []SheetSummary `json:"sheets"`
}
