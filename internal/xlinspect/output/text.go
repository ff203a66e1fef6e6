// Package output renders inspection reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
)

// Banner separates report sections.
var Banner = strings.Repeat("=", 80)

// Ellipsis is appended to every sampled row, whether or not it was truncated.
const Ellipsis = "..."

// TextOptions controls the text report.
type TextOptions struct {
	// MaxColumns is the header read width, shown in the headers caption.
	MaxColumns int
	// SampleRows is the sampled row count, shown in the data rows caption.
	SampleRows int
	// PreviewColumns is how many values of each sampled row are printed.
	PreviewColumns int
}

// WriteText writes the human-readable structure report.
func WriteText(w io.Writer, report *models.Report, opts TextOptions) error {
	_, err := io.WriteString(w, Text(report, opts))
	return err
}

// Text builds the human-readable structure report.
func Text(report *models.Report, opts TextOptions) string {
	var b strings.Builder

	b.WriteString(Banner + "\n")
	b.WriteString("EXCEL FILE STRUCTURE ANALYSIS\n")
	b.WriteString(Banner + "\n")
	fmt.Fprintf(&b, "\nSheet Names: [%s]\n\n", strings.Join(report.SheetNames, ", "))

	for _, sheet := range report.Sheets {
		writeSheet(&b, sheet, opts)
	}
	return b.String()
}

func writeSheet(b *strings.Builder, sheet models.SheetSummary, opts TextOptions) {
	fmt.Fprintf(b, "\n%s\n", Banner)
	fmt.Fprintf(b, "SHEET: %s\n", sheet.Name)
	b.WriteString(Banner + "\n")
	fmt.Fprintf(b, "Max Rows: %d, Max Columns: %d\n", sheet.Dimension.MaxRow, sheet.Dimension.MaxColumn)
	if sheet.Dimension.UsedRange != "" {
		fmt.Fprintf(b, "Used Range: %s\n", sheet.Dimension.UsedRange)
	}

	fmt.Fprintf(b, "\nHeaders (first %d columns):\n", opts.MaxColumns)
	for i, h := range sheet.Headers {
		fmt.Fprintf(b, "  %d. %s\n", i+1, h.String())
	}

	fmt.Fprintf(b, "\nFirst %d Data Rows:\n", opts.SampleRows)
	for _, row := range sheet.DataRows {
		fmt.Fprintf(b, "  Row %d: %s%s\n", row.R, formatRow(row.Values, opts.PreviewColumns), Ellipsis)
	}
}

// formatRow renders at most limit values as a bracketed list.
func formatRow(values []models.Cell, limit int) string {
	if limit >= 0 && len(values) > limit {
		values = values[:limit]
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Quoted()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
