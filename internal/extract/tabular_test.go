package extract

import (
	"reflect"
	"testing"

	"github.com/scopelens/scopelens/internal/grid"
)

func TestFromGrid(t *testing.T) {
	g := grid.FromStrings([][]string{
		{"Milestone", "Title", "Hours", "Price"},
		{"M1", "Design", "10", "$500"},
		{"M2", "Build", "20", "1,200"},
	})

	got := FromGrid(g)
	if len(got) != 2 {
		t.Fatalf("got %d milestones, want 2", len(got))
	}

	first := got[0]
	if first.ID != "m-0" {
		t.Errorf("ID = %q, want m-0", first.ID)
	}
	if first.MilestoneLabel != "M1" || first.Title != "Design" {
		t.Errorf("label/title = %q/%q, want M1/Design", first.MilestoneLabel, first.Title)
	}
	if first.EstimatedHours != 10 {
		t.Errorf("EstimatedHours = %v, want 10", first.EstimatedHours)
	}
	if first.PriceEstimate != 500 {
		t.Errorf("PriceEstimate = %v, want 500", first.PriceEstimate)
	}
	// No scope column resolved, so scope falls back to the title.
	if first.Scope != "Design" {
		t.Errorf("Scope = %q, want Design", first.Scope)
	}
	if !reflect.DeepEqual(first.Tasks, []string{"Task details not found in document"}) {
		t.Errorf("Tasks = %v, want placeholder", first.Tasks)
	}
	if first.Exclusions == nil || len(first.Exclusions) != 0 {
		t.Errorf("Exclusions = %v, want empty non-nil slice", first.Exclusions)
	}

	second := got[1]
	if second.ID != "m-1" {
		t.Errorf("ID = %q, want m-1", second.ID)
	}
	if second.PriceEstimate != 1200 {
		t.Errorf("PriceEstimate = %v, want 1200 (comma stripped)", second.PriceEstimate)
	}

	total := Aggregate(got)
	if total.Hours != 30 || total.Price != 1700 {
		t.Errorf("Aggregate = %+v, want {30 1700}", total)
	}
}

func TestFromGrid_SkipsUnusableRows(t *testing.T) {
	g := grid.FromStrings([][]string{
		{"Milestone", "Title", "Hours"},
		{"", "", "40"},
		{"", "", ""},
		{"M1", "Design", "10"},
	})

	got := FromGrid(g)
	if len(got) != 1 {
		t.Fatalf("got %d milestones, want 1", len(got))
	}
	if got[0].MilestoneLabel != "M1" || got[0].EstimatedHours != 10 {
		t.Errorf("unexpected survivor: %+v", got[0])
	}
}

func TestFromGrid_LabelAndTitleFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		row       []string
		wantLabel string
		wantTitle string
	}{
		{"title from label", []string{"Phase A", ""}, "Phase A", "Phase A"},
		{"label synthesized", []string{"", "Kickoff"}, "Milestone 1", "Kickoff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.FromStrings([][]string{
				{"Milestone", "Title"},
				tt.row,
			})
			got := FromGrid(g)
			if len(got) != 1 {
				t.Fatalf("got %d milestones, want 1", len(got))
			}
			if got[0].MilestoneLabel != tt.wantLabel {
				t.Errorf("label = %q, want %q", got[0].MilestoneLabel, tt.wantLabel)
			}
			if got[0].Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", got[0].Title, tt.wantTitle)
			}
		})
	}
}

func TestFromGrid_EmptyGrid(t *testing.T) {
	if got := FromGrid(nil); got != nil {
		t.Errorf("FromGrid(nil) = %v, want nil", got)
	}
	if got := FromGrid(grid.FromStrings([][]string{{"", ""}, {""}})); len(got) != 0 {
		t.Errorf("blank grid yielded %d milestones, want 0", len(got))
	}
}

func TestFindHeaderRow(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want int
	}{
		{
			name: "header on first row",
			rows: [][]string{{"Milestone", "Title"}, {"M1", "Design"}},
			want: 0,
		},
		{
			name: "preamble before header",
			rows: [][]string{
				{"Project Alpha"},
				{""},
				{"Milestone", "Title", "Hours"},
				{"M1", "Design", "10"},
			},
			want: 2,
		},
		{
			name: "header beyond scan window falls back to row 0",
			rows: func() [][]string {
				rows := make([][]string, 0, 13)
				for i := 0; i < 12; i++ {
					rows = append(rows, []string{"a", "b"})
				}
				return append(rows, []string{"Milestone", "Title"})
			}(),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findHeaderRow(grid.FromStrings(tt.rows)); got != tt.want {
				t.Errorf("findHeaderRow = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParsePriceCell(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$500", 500},
		{"1,200", 1200},
		{"USD 3,000.50", 3000.50},
		{"n/a", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parsePriceCell(grid.TextCell(tt.in)); got != tt.want {
				t.Errorf("parsePriceCell(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHoursCell(t *testing.T) {
	tests := []struct {
		name string
		cell grid.Cell
		want float64
	}{
		{"numeric cell", grid.NumberCell(12.5), 12.5},
		{"plain text number", grid.TextCell("10"), 10},
		{"unit suffix", grid.TextCell("10 hours"), 10},
		{"fractional with suffix", grid.TextCell("12.5 hrs"), 12.5},
		{"no leading number", grid.TextCell("about 10"), 0},
		{"empty", grid.EmptyCell(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseHoursCell(tt.cell); got != tt.want {
				t.Errorf("parseHoursCell = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromGrid_HoursWithUnitSuffix(t *testing.T) {
	g := grid.FromStrings([][]string{
		{"Milestone", "Title", "Hours"},
		{"M1", "Design", "10 hours"},
	})
	got := FromGrid(g)
	if len(got) != 1 {
		t.Fatalf("got %d milestones, want 1", len(got))
	}
	if got[0].EstimatedHours != 10 {
		t.Errorf("EstimatedHours = %v, want 10", got[0].EstimatedHours)
	}
}

// Extraction is deterministic: the same grid yields the same records.
func TestFromGrid_Deterministic(t *testing.T) {
	g := grid.FromStrings([][]string{
		{"Milestone", "Title", "Scope", "Tasks", "Hours", "Price"},
		{"M1", "Design", "Wireframes", "sketch, review", "10", "$500"},
	})
	a := FromGrid(g)
	b := FromGrid(g)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated extraction differs:\n%+v\n%+v", a, b)
	}
}
