package output

import (
	"strings"

	toon "github.com/mateuszkardas/toon-go"
	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
)

// ToTOON serializes a report to TOON. Cell values are flattened to their
// display strings so every table in the payload stays uniform.
func ToTOON(report *models.Report) (string, error) {
	return toon.Marshal(toonPayload(report), nil)
}

func toonPayload(report *models.Report) map[string]interface{} {
	sheets := make([]map[string]interface{}, 0, len(report.Sheets))
	headers := make([]map[string]interface{}, 0)
	rows := make([]map[string]interface{}, 0)

	for _, s := range report.Sheets {
		sheets = append(sheets, map[string]interface{}{
			"name":         s.Name,
			"max_row":      s.Dimension.MaxRow,
			"max_column":   s.Dimension.MaxColumn,
			"used_range":   s.Dimension.UsedRange,
			"header_count": len(s.Headers),
			"row_count":    len(s.DataRows),
		})
		for idx, h := range s.Headers {
			headers = append(headers, map[string]interface{}{
				"sheet":  s.Name,
				"column": idx + 1,
				"value":  h.String(),
			})
		}
		for _, r := range s.DataRows {
			values := make([]string, len(r.Values))
			for idx, v := range r.Values {
				values[idx] = v.String()
			}
			rows = append(rows, map[string]interface{}{
				"sheet":  s.Name,
				"row":    r.R,
				"values": strings.Join(values, "|"),
			})
		}
	}

	return map[string]interface{}{
		"book_name":   report.BookName,
		"engine":      report.Engine,
		"sheet_names": strings.Join(report.SheetNames, "|"),
		"sheets":      sheets,
		"headers":     headers,
		"rows":        rows,
	}
}
