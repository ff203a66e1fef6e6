package output

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		BookName:   "tracker.xlsx",
		Path:       "/data/tracker.xlsx",
		Engine:     "excelize",
		SheetNames: []string{"Budget", "Notes"},
		Sheets: []models.SheetSummary{
			{
				Name:      "Budget",
				Dimension: models.Dimension{MaxRow: 3, MaxColumn: 3, UsedRange: "A1:C3"},
				Headers:   []models.Cell{models.TextCell("Item"), models.TextCell("Due"), models.Empty()},
				DataRows: []models.CellRow{
					{R: 2, Values: []models.Cell{
						models.TextCell("Laptops"),
						models.DateCell(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)),
						models.NumberCell(1499.5),
					}},
					{R: 3, Values: []models.Cell{
						models.TextCell("Licenses"),
						models.Empty(),
						models.FormulaCell("C2*2"),
					}},
				},
			},
			{
				Name:      "Notes",
				Dimension: models.Dimension{},
				Headers:   []models.Cell{},
				DataRows:  []models.CellRow{},
			},
		},
	}
}

func TestText(t *testing.T) {
	banner := strings.Repeat("=", 80)
	expected := strings.Join([]string{
		banner,
		"EXCEL FILE STRUCTURE ANALYSIS",
		banner,
		"",
		"Sheet Names: [Budget, Notes]",
		"",
		"",
		banner,
		"SHEET: Budget",
		banner,
		"Max Rows: 3, Max Columns: 3",
		"Used Range: A1:C3",
		"",
		"Headers (first 20 columns):",
		"  1. Item",
		"  2. Due",
		"  3. <empty>",
		"",
		"First 5 Data Rows:",
		`  Row 2: ["Laptops", 2025-01-31, 1499.5]...`,
		`  Row 3: ["Licenses", <empty>, =C2*2]...`,
		"",
		banner,
		"SHEET: Notes",
		banner,
		"Max Rows: 0, Max Columns: 0",
		"",
		"Headers (first 20 columns):",
		"",
		"First 5 Data Rows:",
		"",
	}, "\n")

	got := Text(sampleReport(), TextOptions{MaxColumns: 20, SampleRows: 5, PreviewColumns: 10})
	require.Equal(t, expected, got)
}

func TestFormatRow(t *testing.T) {
	values := make([]models.Cell, 12)
	for i := range values {
		values[i] = models.NumberCell(float64(i + 1))
	}

	require.Equal(t, "[1, 2, 3, 4, 5, 6, 7, 8, 9, 10]", formatRow(values, 10))
	require.Equal(t, "[1, 2]", formatRow(values[:2], 10))
	require.Equal(t, "[]", formatRow(nil, 10))
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleReport(), false)
	require.NoError(t, err)
	require.Contains(t, string(data), `"sheet_names":["Budget","Notes"]`)
	require.Contains(t, string(data), `"headers":["Item","Due",null]`)

	pretty, err := ToJSON(sampleReport(), true)
	require.NoError(t, err)
	require.Contains(t, string(pretty), "\n  \"book_name\": \"tracker.xlsx\"")
}

func TestToonPayload(t *testing.T) {
	payload := toonPayload(sampleReport())

	require.Equal(t, "tracker.xlsx", payload["book_name"])
	require.Equal(t, "Budget|Notes", payload["sheet_names"])

	sheets := payload["sheets"].([]map[string]interface{})
	require.Len(t, sheets, 2)
	require.Equal(t, "A1:C3", sheets[0]["used_range"])

	rows := payload["rows"].([]map[string]interface{})
	require.Len(t, rows, 2)
	require.Equal(t, "Licenses|<empty>|=C2*2", rows[1]["values"])

	headers := payload["headers"].([]map[string]interface{})
	require.Len(t, headers, 3)
	require.Equal(t, 3, headers[2]["column"])
}
