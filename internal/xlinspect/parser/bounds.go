package parser

import (
	"fmt"

	"github.com/ukaji3/xlinspect-go/internal/xlinspect/models"
	"github.com/xuri/excelize/v2"
)

// bounds tracks the bounding box of non-empty cells, 1-based.
// A zero value holds no cells.
type bounds struct {
	minRow, maxRow int
	minCol, maxCol int
}

func (b *bounds) add(row, col int) {
	if b.minRow == 0 || row < b.minRow {
		b.minRow = row
	}
	if row > b.maxRow {
		b.maxRow = row
	}
	if b.minCol == 0 || col < b.minCol {
		b.minCol = col
	}
	if col > b.maxCol {
		b.maxCol = col
	}
}

func (b bounds) empty() bool {
	return b.maxRow == 0
}

// dimension converts the bounds to a Dimension. Rows and columns are counted
// from the sheet origin, so leading blank rows still count towards MaxRow.
func (b bounds) dimension() models.Dimension {
	if b.empty() {
		return models.Dimension{}
	}
	return models.Dimension{
		MaxRow:    b.maxRow,
		MaxColumn: b.maxCol,
		UsedRange: usedRange(b),
	}
}

// usedRange converts bounds to Excel range notation.
func usedRange(b bounds) string {
	startCell, err := excelize.CoordinatesToCellName(b.minCol, b.minRow)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(b.maxCol, b.maxRow)
	if err != nil {
		return ""
	}
	if startCell == endCell {
		return startCell
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells in a row grid.
func findDataBounds(rows [][]string) bounds {
	var b bounds
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				b.add(rowIdx+1, colIdx+1)
			}
		}
	}
	return b
}
