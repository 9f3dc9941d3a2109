package llm

import "strings"

// BuildExtractionPrompt composes the instruction text sent alongside the raw
// document. The wording mirrors the serialized contract field by field so the
// model's JSON can be unmarshalled directly after validation.
func BuildExtractionPrompt() string {
	parts := []string{
		"Extract project milestone data from the provided document.",
		"Return ONLY JSON that matches the provided JSON Schema.",
		"'milestoneLabel': the exact text from the FIRST column of the milestone table (IDs like \"Milestone 1\", \"M1\").",
		"'title': the exact text from the SECOND column (the descriptive name of that phase).",
		"'scope': detailed description text for the work phase.",
		"'tasks': specific itemized tasks.",
		"'exclusions': items explicitly listed as out of scope.",
		"'estimatedHours' and 'priceEstimate': numerical values only.",
		"Include 'totalBallpark' with summed hours and price when the document states totals.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}
