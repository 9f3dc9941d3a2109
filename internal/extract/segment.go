package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/scopelens/scopelens/internal/entity"
)

// Segment is a contiguous span of source text attributed to one milestone.
type Segment struct {
	Label   string
	Content string
}

// Candidate is one strategy hit: usually a segment handed to the content
// parser, or a fully resolved record when the strategy mapped columns itself.
type Candidate struct {
	Segment
	Record *entity.Milestone
}

// Document is the segmenter's view of the decoded text: a whitespace-collapsed
// form for pattern scanning, plus the original lines for table detection
// (tab and multi-space cell boundaries survive only there).
type Document struct {
	Normalized string
	Lines      []string
}

// Strategy is one independent boundary-detection pass. Strategies share no
// state; the caller accepts the first one yielding at least Min candidates.
type Strategy struct {
	Name string
	Min  int
	Run  func(doc Document) []Candidate
}

// strategies is the ordered cascade: keyword-anchored sections, table-like
// lines, numbered sections, then the whole document as a single segment.
var strategies = []Strategy{
	{Name: "anchored", Min: 1, Run: anchoredSections},
	{Name: "table", Min: 1, Run: tableRows},
	{Name: "numbered", Min: 2, Run: numberedSections},
	{Name: "whole-document", Min: 1, Run: wholeDocument},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NewDocument normalizes raw decoded text into both segmenter views.
func NewDocument(raw string) Document {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimRight(l, " \t\r"))
		}
	}
	return Document{
		Normalized: strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " ")),
		Lines:      lines,
	}
}

// FromText runs the strategy cascade over decoded document text and returns
// the milestones in detection order. Empty or whitespace-only input returns
// nil without invoking any strategy; the normalization layer covers it.
func FromText(raw string) []entity.Milestone {
	doc := NewDocument(raw)
	if doc.Normalized == "" {
		return nil
	}

	for _, st := range strategies {
		cands := st.Run(doc)
		if len(cands) < st.Min {
			continue
		}
		milestones := make([]entity.Milestone, 0, len(cands))
		for _, c := range cands {
			if c.Record != nil {
				rec := *c.Record
				rec.ID = fmt.Sprintf("m-%d", len(milestones))
				milestones = append(milestones, rec)
				continue
			}
			milestones = append(milestones, ParseSegment(c.Label, c.Content, len(milestones)))
		}
		if len(milestones) > 0 {
			return milestones
		}
	}
	return nil
}

// anchorWords are tried in order; the first anchor with any occurrence wins
// and the remaining anchors are skipped.
var anchorWords = []string{"milestone", "m", "phase", "stage"}

var anchorHeads = buildAnchorHeads()

func buildAnchorHeads() map[string]*regexp.Regexp {
	heads := make(map[string]*regexp.Regexp, len(anchorWords))
	for _, w := range anchorWords {
		heads[w] = regexp.MustCompile(`(?i)\b` + w + `\s*(\d+|[\w-]+)[:.\s]+`)
	}
	return heads
}

// anchoredSections finds <anchor><separator><id> heads and attributes the text
// up to the next head (or end of text) to each.
func anchoredSections(doc Document) []Candidate {
	for _, w := range anchorWords {
		idx := anchorHeads[w].FindAllStringSubmatchIndex(doc.Normalized, -1)
		if len(idx) == 0 {
			continue
		}
		cands := make([]Candidate, 0, len(idx))
		for i, m := range idx {
			end := len(doc.Normalized)
			if i+1 < len(idx) {
				end = idx[i+1][0]
			}
			label := ""
			if m[2] >= 0 {
				label = doc.Normalized[m[2]:m[3]]
			}
			if label == "" {
				label = fmt.Sprintf("%d", i+1)
			}
			cands = append(cands, Candidate{Segment: Segment{
				Label:   label,
				Content: doc.Normalized[m[1]:end],
			}})
		}
		return cands
	}
	return nil
}

var cellBoundary = regexp.MustCompile(`\t|\s{2,}`)

const tableHeaderScanLimit = 20

// tableRows detects a header line and maps each subsequent non-trivial line
// to one record: column 0 is the milestone id, column 1 the title, the rest
// joins into the scope. Hours and price are scraped from the whole line.
func tableRows(doc Document) []Candidate {
	headerIdx := -1
	limit := tableHeaderScanLimit
	if len(doc.Lines) < limit {
		limit = len(doc.Lines)
	}
	for i := 0; i < limit; i++ {
		line := strings.ToLower(doc.Lines[i])
		for _, kw := range headerKeywords {
			if strings.Contains(line, kw) {
				headerIdx = i
				break
			}
		}
		if headerIdx >= 0 {
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	var cands []Candidate
	for i := headerIdx + 1; i < len(doc.Lines); i++ {
		line := strings.TrimSpace(doc.Lines[i])
		if len(line) < 10 {
			continue
		}
		var parts []string
		for _, p := range cellBoundary.Split(line, -1) {
			if t := strings.TrimSpace(p); t != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) < 2 {
			continue
		}

		label := truncate(parts[0], 50)
		if label == "" {
			label = fmt.Sprintf("M%d", len(cands)+1)
		}
		title := truncate(parts[1], 200)
		if title == "" {
			title = "Untitled"
		}
		scope := truncate(strings.Join(parts[2:], " "), 1000)
		if scope == "" {
			scope = "Scope from document"
		}
		joined := strings.Join(parts, " ")
		cands = append(cands, Candidate{Record: &entity.Milestone{
			MilestoneLabel: label,
			Title:          title,
			Scope:          scope,
			Tasks:          []string{"Tasks from document"},
			Exclusions:     []string{},
			EstimatedHours: maxHours(joined),
			PriceEstimate:  maxPrice(joined),
		}})
	}
	return cands
}

var numberedSection = regexp.MustCompile(`(\d+)[.)]\s+([A-Z][^0-9]{20,500})`)

// numberedSections matches "<digits>. Capitalized text..." runs. The caller
// requires at least two hits before trusting this strategy.
func numberedSections(doc Document) []Candidate {
	matches := numberedSection.FindAllStringSubmatch(doc.Normalized, -1)
	cands := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		cands = append(cands, Candidate{Segment: Segment{
			Label:   "M" + m[1],
			Content: m[2],
		}})
	}
	return cands
}

func wholeDocument(doc Document) []Candidate {
	return []Candidate{{Segment: Segment{Label: "M1", Content: doc.Normalized}}}
}

// truncate caps s at n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
