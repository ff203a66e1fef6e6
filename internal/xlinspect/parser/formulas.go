package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellPos is a 1-based (row, col) position.
type cellPos struct {
	row, col int
}

// sheetFormulas maps every formula cell of a sheet to its formula text. The
// text is empty for cells that only reference a shared formula.
type sheetFormulas map[cellPos]string

// formulaIndex reads formula cells straight from the worksheet XML. Cached
// values are what excelize's GetRows and xlsxreader report, so a formula that
// was never calculated is invisible to both; the index makes those cells count
// towards the sheet's bounds.
type formulaIndex struct {
	path       string
	sheetPaths map[string]string
	sheets     map[string]sheetFormulas
}

func newFormulaIndex(path string) *formulaIndex {
	return &formulaIndex{
		path:   path,
		sheets: make(map[string]sheetFormulas),
	}
}

// sheet returns the formula cells of the named sheet.
func (x *formulaIndex) sheet(name string) (sheetFormulas, error) {
	if fs, ok := x.sheets[name]; ok {
		return fs, nil
	}

	r, err := zip.OpenReader(x.path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if x.sheetPaths == nil {
		x.sheetPaths, err = getSheetPaths(&r.Reader)
		if err != nil {
			return nil, err
		}
	}

	fs := make(sheetFormulas)
	if sheetPath, ok := x.sheetPaths[name]; ok {
		data, err := readZipFile(&r.Reader, sheetPath)
		if err != nil {
			return nil, err
		}
		if data != nil {
			if fs, err = parseSheetFormulas(data); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", sheetPath, err)
			}
		}
	}
	x.sheets[name] = fs
	return fs, nil
}

// addTo extends b with every formula cell.
func (fs sheetFormulas) addTo(b *bounds) {
	for pos := range fs {
		b.add(pos.row, pos.col)
	}
}

// getSheetPaths maps sheet names to their worksheet part paths.
func getSheetPaths(r *zip.Reader) (map[string]string, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return map[string]string{}, err
	}
	relsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || relsXML == nil {
		return map[string]string{}, err
	}
	return parseWorkbookRels(relsXML, parseWorkbookSheets(workbookXML)), nil
}

// parseSheetFormulas collects the <c> elements of a worksheet that carry an <f> child.
func parseSheetFormulas(data []byte) (sheetFormulas, error) {
	result := make(sheetFormulas)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	var (
		ref       string
		inCell    bool
		inFormula bool
		hasF      bool
		text      strings.Builder
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "c":
				inCell, hasF, ref = true, false, ""
				text.Reset()
				for _, attr := range t.Attr {
					if attr.Name.Local == "r" {
						ref = attr.Value
					}
				}
			case "f":
				if inCell {
					inFormula, hasF = true, true
				}
			}
		case xml.CharData:
			if inFormula {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "f":
				inFormula = false
			case "c":
				if hasF && ref != "" {
					col, row, err := excelize.CellNameToCoordinates(ref)
					if err == nil {
						result[cellPos{row: row, col: col}] = strings.TrimSpace(text.String())
					}
				}
				inCell = false
			}
		}
	}
	return result, nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// parseWorkbookSheets maps relationship ids to sheet names.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// parseWorkbookRels maps sheet names to worksheet paths.
func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolvePartPath(target)
			}
		}
	}

	return result
}

// resolvePartPath resolves a workbook relationship target to a package path.
func resolvePartPath(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	for strings.HasPrefix(target, "../") {
		target = strings.TrimPrefix(target, "../")
	}
	if strings.HasPrefix(target, "xl/") {
		return target
	}
	return "xl/" + target
}
