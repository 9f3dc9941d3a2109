package extract

import "strings"

// unresolved marks a role with no matching column in the header row.
const unresolved = -1

// RoleMap maps each semantic column role to an index into the header row,
// or -1 when no header label matched. It lives only for the duration of one
// tabular extraction.
type RoleMap struct {
	Milestone  int
	Title      int
	Scope      int
	Tasks      int
	Exclusions int
	Hours      int
	Price      int
}

// Keyword synonyms per role, in search order. The row is scanned left to
// right, so earlier columns win ties.
var (
	milestoneKeywords = []string{"milestone", "m", "id", "phase"}
	titleKeywords     = []string{"title", "name", "description", "phase name"}
	scopeKeywords     = []string{"scope", "description", "details", "work"}
	taskKeywords      = []string{"task", "tasks", "deliverable", "deliverables"}
	exclusionKeywords = []string{"exclusion", "exclusions", "out of scope", "not included"}
	hoursKeywords     = []string{"hour", "hours", "effort", "time", "estimated hours"}
	priceKeywords     = []string{"price", "cost", "estimate", "budget", "amount", "price estimate"}
)

// ResolveRoles maps the header row's labels to column roles via keyword
// containment. Pure function, no side effects.
func ResolveRoles(headers []string) RoleMap {
	return RoleMap{
		Milestone:  findColumnIndex(headers, milestoneKeywords),
		Title:      findColumnIndex(headers, titleKeywords),
		Scope:      findColumnIndex(headers, scopeKeywords),
		Tasks:      findColumnIndex(headers, taskKeywords),
		Exclusions: findColumnIndex(headers, exclusionKeywords),
		Hours:      findColumnIndex(headers, hoursKeywords),
		Price:      findColumnIndex(headers, priceKeywords),
	}
}

// findColumnIndex returns the first column whose lower-cased trimmed label
// contains any of the keywords, or -1.
func findColumnIndex(headers []string, keywords []string) int {
	for i, h := range headers {
		label := strings.ToLower(strings.TrimSpace(h))
		if label == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(label, kw) {
				return i
			}
		}
	}
	return unresolved
}
