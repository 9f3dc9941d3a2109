package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NormalizeProjectJSON
// - Renames known synonyms (milestone/label -> milestoneLabel)
// - Drops null/empty optionals (totalBallpark in particular)
// - Coerces numeric strings -> numbers for hours/price fields
// Models drift on optional fields; normalizing here lets the strict schema
// validation stay strict.
func NormalizeProjectJSON(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var notes []string

	if tb, ok := m["totalBallpark"]; ok {
		switch t := tb.(type) {
		case nil:
			delete(m, "totalBallpark")
			notes = append(notes, "totalBallpark(null)")
		case map[string]any:
			coerceNumber(t, "hours", &notes)
			coerceNumber(t, "price", &notes)
		default:
			delete(m, "totalBallpark")
			notes = append(notes, "totalBallpark(type)")
		}
	}

	if items, ok := m["milestones"].([]any); ok {
		for i, it := range items {
			ms, ok := it.(map[string]any)
			if !ok {
				continue
			}
			renameKey(ms, "milestone", "milestoneLabel", &notes)
			renameKey(ms, "label", "milestoneLabel", &notes)
			coerceNumber(ms, "estimatedHours", &notes)
			coerceNumber(ms, "priceEstimate", &notes)
			dropNullList(ms, "tasks", &notes)
			dropNullList(ms, "exclusions", &notes)
			items[i] = ms
		}
		m["milestones"] = items
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, notes, nil
}

func renameKey(m map[string]any, from, to string, notes *[]string) {
	if v, ok := m[from]; ok {
		if _, exists := m[to]; !exists {
			m[to] = v
		}
		delete(m, from)
		*notes = append(*notes, from+"->"+to)
	}
}

func coerceNumber(m map[string]any, k string, notes *[]string) {
	v, ok := m[k]
	if !ok {
		return
	}
	switch t := v.(type) {
	case float64:
		// already numeric
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
		if f, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64); err == nil {
			m[k] = f
			*notes = append(*notes, k+"(string)")
		} else {
			m[k] = 0.0
			*notes = append(*notes, k+"(unparseable)")
		}
	case nil:
		m[k] = 0.0
		*notes = append(*notes, k+"(null)")
	default:
		m[k] = 0.0
		*notes = append(*notes, k+"(type)")
	}
}

func dropNullList(m map[string]any, k string, notes *[]string) {
	if v, ok := m[k]; ok && v == nil {
		m[k] = []any{}
		*notes = append(*notes, k+"(null)")
	}
	if _, ok := m[k]; !ok {
		m[k] = []any{}
		*notes = append(*notes, k+"(missing)")
	}
}
