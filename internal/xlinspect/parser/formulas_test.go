package parser

import (
	"testing"
)

func TestParseSheetFormulas(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <sheetData>
    <row r="1">
      <c r="A1"><v>1</v></c>
      <c r="B1"><f>A1*2</f><v>2</v></c>
      <c r="C1" t="str"><f>CONCAT("a","b")</f></c>
    </row>
    <row r="2">
      <c r="B2"><f t="shared" ref="B2:B4" si="0">A2*2</f></c>
      <c r="B3"><f t="shared" si="0"/></c>
      <c r="D2" t="s"><v>0</v></c>
    </row>
  </sheetData>
</worksheet>`)

	fs, err := parseSheetFormulas(data)
	if err != nil {
		t.Fatalf("parseSheetFormulas failed: %v", err)
	}

	expected := map[cellPos]string{
		{row: 1, col: 2}: "A1*2",
		{row: 1, col: 3}: `CONCAT("a","b")`,
		{row: 2, col: 2}: "A2*2",
		{row: 3, col: 2}: "",
	}
	if len(fs) != len(expected) {
		t.Errorf("Expected %d formula cells, got %d: %v", len(expected), len(fs), fs)
	}
	for pos, want := range expected {
		got, ok := fs[pos]
		if !ok {
			t.Errorf("Missing formula cell at %+v", pos)
			continue
		}
		if got != want {
			t.Errorf("Formula at %+v: expected %q, got %q", pos, want, got)
		}
	}

	var b bounds
	fs.addTo(&b)
	if want := (bounds{minRow: 1, maxRow: 3, minCol: 2, maxCol: 3}); b != want {
		t.Errorf("Expected bounds %+v, got %+v", want, b)
	}
}

func TestParseSheetFormulasMalformed(t *testing.T) {
	if _, err := parseSheetFormulas([]byte(`<worksheet><sheetData><row><c r="A1"><f>`)); err == nil {
		t.Errorf("Expected an error for truncated XML")
	}
}

func TestParseWorkbookRels(t *testing.T) {
	workbook := []byte(`<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Summary" sheetId="1" r:id="rId1"/>
    <sheet name="Data" sheetId="2" r:id="rId2"/>
  </sheets>
</workbook>`)
	rels := []byte(`<Relationships>
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/sheet2.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`)

	paths := parseWorkbookRels(rels, parseWorkbookSheets(workbook))
	if len(paths) != 2 {
		t.Errorf("Expected 2 sheet paths, got %v", paths)
	}
	if paths["Summary"] != "xl/worksheets/sheet1.xml" {
		t.Errorf("Expected xl/worksheets/sheet1.xml, got %q", paths["Summary"])
	}
	if paths["Data"] != "xl/worksheets/sheet2.xml" {
		t.Errorf("Expected xl/worksheets/sheet2.xml, got %q", paths["Data"])
	}
}

func TestResolvePartPath(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"/xl/worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"../xl/worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"xl/worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
	}

	for _, tt := range tests {
		if got := resolvePartPath(tt.target); got != tt.expected {
			t.Errorf("resolvePartPath(%q) = %q, want %q", tt.target, got, tt.expected)
		}
	}
}
