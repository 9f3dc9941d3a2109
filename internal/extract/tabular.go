package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/scopelens/scopelens/internal/entity"
	"github.com/scopelens/scopelens/internal/grid"
)

// headerKeywords identify a header row inside the first rows of a worksheet.
var headerKeywords = []string{"milestone", "title", "scope", "task", "hour", "price", "cost", "estimate"}

// headerScanLimit bounds how deep we look for a header row.
const headerScanLimit = 10

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// leadingNumber matches a numeric prefix, so "10 hours" parses as 10.
var leadingNumber = regexp.MustCompile(`^-?(?:\d+(?:\.\d+)?|\.\d+)`)

// FromGrid extracts milestone records from a decoded worksheet grid.
// It never fails on malformed rows; rows it cannot use are skipped and a
// caller-side fallback covers the zero-milestone case.
func FromGrid(g grid.Grid) []entity.Milestone {
	if len(g) == 0 {
		return nil
	}

	headerIdx := findHeaderRow(g)
	roles := ResolveRoles(g[headerIdx].Texts())

	var milestones []entity.Milestone
	for i := headerIdx + 1; i < len(g); i++ {
		row := g[i]
		if len(row) == 0 || row.IsEmpty() {
			continue
		}

		label := row.Cell(roles.Milestone).String()
		title := row.Cell(roles.Title).String()
		if label == "" && title == "" {
			continue
		}

		n := len(milestones) + 1
		if title == "" {
			title = label
		}
		if title == "" {
			title = fmt.Sprintf("Untitled Milestone %d", n)
		}
		if label == "" {
			label = fmt.Sprintf("Milestone %d", n)
		}

		scope := row.Cell(roles.Scope).String()
		if scope == "" {
			scope = title
		}
		if scope == "" {
			scope = "No scope description provided"
		}

		tasks := row.Cell(roles.Tasks).Items()
		if len(tasks) == 0 {
			tasks = []string{"Task details not found in document"}
		}
		exclusions := row.Cell(roles.Exclusions).Items()
		if exclusions == nil {
			exclusions = []string{}
		}

		milestones = append(milestones, entity.Milestone{
			ID:             fmt.Sprintf("m-%d", len(milestones)),
			MilestoneLabel: label,
			Title:          title,
			Scope:          scope,
			Tasks:          tasks,
			Exclusions:     exclusions,
			EstimatedHours: parseHoursCell(row.Cell(roles.Hours)),
			PriceEstimate:  parsePriceCell(row.Cell(roles.Price)),
		})
	}
	return milestones
}

// findHeaderRow scans at most the first 10 rows for header keywords in the
// concatenated lower-cased row text. Row 0 is assumed when nothing matches.
func findHeaderRow(g grid.Grid) int {
	limit := headerScanLimit
	if len(g) < limit {
		limit = len(g)
	}
	for i := 0; i < limit; i++ {
		rowText := strings.ToLower(strings.Join(g[i].Texts(), " "))
		for _, kw := range headerKeywords {
			if strings.Contains(rowText, kw) {
				return i
			}
		}
	}
	return 0
}

// parseHoursCell reads the leading numeric prefix of the cell; unit suffixes
// like "10 hours" are common in real worksheets. No prefix means 0.
func parseHoursCell(c grid.Cell) float64 {
	prefix := leadingNumber.FindString(strings.TrimSpace(c.String()))
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return v
}

// parsePriceCell strips every rune that is not a digit or decimal point
// before parsing; "$1,200" becomes 1200. Locales using '.' as a thousands
// separator mis-parse here, a known limitation carried from the original
// behavior.
func parsePriceCell(c grid.Cell) float64 {
	cleaned := nonPriceChars.ReplaceAllString(c.String(), "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
