package output

import (
	"encoding/json"

	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
)

// ToJSON serializes a report to JSON.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
