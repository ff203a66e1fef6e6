package xlinspect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
	"github.com/ukaji3/xlinspect-go/internal/xlinspect/output"
	"github.com/ukaji3/xlinspect-go/internal/xlinspect/parser"
)

// openWorkbook opens a workbook for inspection.
var openWorkbook = parser.Open

// Inspect opens the workbook at path and builds its structure report.
func Inspect(path string, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, newInspectionError(path, StageOpen, "", err, 2)
	}

	slog.Debug("Opening workbook.", "path", path, "engine", opts.Engine)
	wb, err := openWorkbook(path, opts.Engine, opts.lastSampleRow())
	if err != nil {
		if !errors.Is(err, fs.ErrPermission) {
			err = fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return nil, newInspectionError(path, StageOpen, "", err, 2)
	}
	defer wb.Close()

	sheetNames := wb.SheetList()
	report := &models.Report{
		BookName:   bookName(path),
		Path:       path,
		Engine:     string(opts.Engine),
		SheetNames: sheetNames,
		Sheets:     make([]models.SheetSummary, 0, len(sheetNames)),
	}

	for _, sheetName := range sheetNames {
		summary, err := inspectSheet(wb, path, sheetName, opts)
		if err != nil {
			return nil, err
		}
		report.Sheets = append(report.Sheets, summary)
	}

	slog.Debug("Workbook inspected.", "path", path, "sheets", len(report.Sheets))
	return report, nil
}

// inspectSheet reads the dimension, header row and sampled data rows of a sheet.
func inspectSheet(wb parser.Workbook, path, sheetName string, opts Options) (models.SheetSummary, error) {
	summary := models.SheetSummary{Name: sheetName}

	dim, err := wb.Dimension(sheetName)
	if err != nil {
		return summary, newInspectionError(path, StageDimension, sheetName, err, 2)
	}
	summary.Dimension = dim

	width := min(dim.MaxColumn, opts.MaxColumns)
	headers, err := readRow(wb, sheetName, 1, width)
	if err != nil {
		return summary, newInspectionError(path, StageCells, sheetName, err, 2)
	}
	summary.Headers = headers

	lastRow := min(opts.lastSampleRow(), dim.MaxRow)
	summary.DataRows = make([]models.CellRow, 0, max(0, lastRow-1))
	for row := 2; row <= lastRow; row++ {
		values, err := readRow(wb, sheetName, row, width)
		if err != nil {
			return summary, newInspectionError(path, StageCells, sheetName, err, 2)
		}
		summary.DataRows = append(summary.DataRows, models.CellRow{R: row, Values: values})
	}

	slog.Debug("Sheet inspected.", "sheet", sheetName, "rows", dim.MaxRow, "cols", dim.MaxColumn, "sampled", len(summary.DataRows))
	return summary, nil
}

// readRow reads columns 1..width of a row.
func readRow(wb parser.Workbook, sheetName string, row, width int) ([]models.Cell, error) {
	values := make([]models.Cell, 0, width)
	for col := 1; col <= width; col++ {
		c, err := wb.Cell(sheetName, row, col)
		if err != nil {
			return nil, fmt.Errorf("reading row %d column %d: %w", row, col, err)
		}
		values = append(values, c)
	}
	return values, nil
}

// Run inspects the workbook at path and writes the report to stdout. Any
// inspection failure, including a panic inside a reader, is reported as an
// error line on stdout and a trace on stderr, and Run returns nil. Run returns
// an error only for invalid options or when the failure itself cannot be
// written.
func Run(stdout, stderr io.Writer, path string, opts Options) (err error) {
	if err := opts.Validate(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			ie := newInspectionError(path, StagePanic, "", fmt.Errorf("panic: %v", r), 2)
			err = reportFailure(stdout, stderr, path, ie)
		}
	}()

	report, inspectErr := Inspect(path, opts)
	if inspectErr != nil {
		return reportFailure(stdout, stderr, path, inspectErr)
	}

	if renderErr := render(stdout, report, opts); renderErr != nil {
		return reportFailure(stdout, stderr, path, NewInspectionError(path, StageRender, "", renderErr))
	}
	return nil
}

func render(w io.Writer, report *models.Report, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		data, err := output.ToJSON(report, opts.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatTOON:
		data, err := output.ToTOON(report)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, data)
		return err
	default:
		return output.WriteText(w, report, output.TextOptions{
			MaxColumns:     opts.MaxColumns,
			SampleRows:     opts.SampleRows,
			PreviewColumns: opts.PreviewColumns,
		})
	}
}

// reportFailure prints the error line and its trace.
func reportFailure(stdout, stderr io.Writer, path string, err error) error {
	var ie *InspectionError
	if !errors.As(err, &ie) {
		ie = newInspectionError(path, StageOpen, "", err, 2)
		err = ie
	}
	slog.Debug("Inspection failed.", "path", path, "stage", ie.Stage, "error", err)

	if _, werr := fmt.Fprintf(stdout, "Error: %v\n", err); werr != nil {
		return werr
	}
	_, werr := io.WriteString(stderr, ie.Trace())
	return werr
}

// bookName returns the file name of path, accepting both slash styles.
func bookName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
