package decode

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a single-sheet workbook with the given rows.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell %s: %v", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestWorkbook_RoundTrip(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Milestone", "Title", "Hours", "Price"},
		{"M1", "Design", 10, "$500"},
	})

	g, err := Workbook(data)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	if len(g) != 2 {
		t.Fatalf("got %d rows, want 2", len(g))
	}
	if got := g[0].Cell(0).String(); got != "Milestone" {
		t.Errorf("header cell = %q, want Milestone", got)
	}
	if got := g[1].Cell(2).String(); got != "10" {
		t.Errorf("numeric cell = %q, want 10", got)
	}
	if got := g[1].Cell(3).String(); got != "$500" {
		t.Errorf("price cell = %q, want $500", got)
	}
}

func TestWorkbook_EmptySheet(t *testing.T) {
	data := buildWorkbook(t, nil)
	g, err := Workbook(data)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	if len(g) != 0 {
		t.Errorf("empty sheet yielded %d rows, want 0", len(g))
	}
}
