package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/scopelens/scopelens/internal/entity"
)

const (
	titleMax      = 100
	scopeMax      = 2000
	taskMaxCount  = 20
	exclMaxCount  = 10
	itemMinLen    = 5
	itemMaxLen    = 200
	taskFallback  = "Tasks extracted from document content"
	scopeFallback = "Scope details extracted from document"
)

var (
	lineBreak = regexp.MustCompile(`\n|\. `)

	// Task pattern families in priority order: labelled lines, bullets,
	// numbered items. All families accumulate into one list.
	taskPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:task|deliverable|item)s?:?\s*([^\n]+)`),
		regexp.MustCompile(`[-•*]\s*([^\n]+)`),
		regexp.MustCompile(`\d+[.)]\s*([^\n]+)`),
	}

	exclusionPattern = regexp.MustCompile(`(?i)(?:exclusion|out of scope|not included|excluded)s?:?\s*([^\n]+)`)

	hoursPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)\b`),
		regexp.MustCompile(`(?i)(?:hours?|hrs?|effort):\s*(\d+)`),
	}

	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\$\s*([\d,]+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)(?:price|cost|budget|amount):\s*\$?\s*([\d,]+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)USD\s*([\d,]+(?:\.\d{2})?)`),
	}
)

// ParseSegment turns one segment's label and raw content into a milestone
// record. Pure text processing; every missing pattern degrades to a default,
// never to a failure.
func ParseSegment(label, content string, index int) entity.Milestone {
	title := segmentTitle(label, content)

	scope := ""
	if len(content) > len(title) {
		scope = strings.TrimSpace(content[len(title):])
	}
	if scope == "" {
		scope = strings.TrimSpace(truncate(content, 500))
	}
	if scope == "" {
		scope = scopeFallback
	}

	tasks := collectTasks(content)
	if len(tasks) == 0 {
		tasks = []string{taskFallback}
	}
	exclusions := collectExclusions(content)

	if !strings.HasPrefix(label, "M") {
		label = "M" + label
	}

	return entity.Milestone{
		ID:             fmt.Sprintf("m-%d", index),
		MilestoneLabel: label,
		Title:          title,
		Scope:          truncate(scope, scopeMax),
		Tasks:          tasks,
		Exclusions:     exclusions,
		EstimatedHours: maxHours(content),
		PriceEstimate:  maxPrice(content),
	}
}

// segmentTitle takes the first line (newline or sentence break) capped at
// 100 characters.
func segmentTitle(label, content string) string {
	for _, line := range lineBreak.Split(content, -1) {
		if t := strings.TrimSpace(line); t != "" {
			return truncate(t, titleMax)
		}
	}
	return "Milestone " + label
}

func collectTasks(content string) []string {
	var tasks []string
	for _, pat := range taskPatterns {
		for _, m := range pat.FindAllStringSubmatch(content, -1) {
			task := strings.TrimSpace(m[1])
			if len(task) > itemMinLen && len(task) < itemMaxLen {
				tasks = append(tasks, task)
			}
		}
	}
	if len(tasks) > taskMaxCount {
		tasks = tasks[:taskMaxCount]
	}
	return tasks
}

func collectExclusions(content string) []string {
	exclusions := []string{}
	for _, m := range exclusionPattern.FindAllStringSubmatch(content, -1) {
		excl := strings.TrimSpace(m[1])
		if len(excl) > itemMinLen {
			exclusions = append(exclusions, excl)
		}
	}
	if len(exclusions) > exclMaxCount {
		exclusions = exclusions[:exclMaxCount]
	}
	return exclusions
}

// maxHours returns the largest integer hour figure mentioned in the text.
// Free text often carries per-task sub-estimates next to the headline number;
// the maximum is taken as the headline estimate.
func maxHours(text string) float64 {
	var best float64
	for _, pat := range hoursPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			if v, err := strconv.Atoi(m[1]); err == nil && float64(v) > best {
				best = float64(v)
			}
		}
	}
	return best
}

// maxPrice returns the largest currency amount mentioned in the text, with
// thousands commas stripped before parsing.
func maxPrice(text string) float64 {
	var best float64
	for _, pat := range pricePatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			raw := strings.ReplaceAll(m[1], ",", "")
			if v, err := strconv.ParseFloat(raw, 64); err == nil && v > best {
				best = v
			}
		}
	}
	return best
}
