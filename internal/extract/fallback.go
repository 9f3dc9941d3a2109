package extract

import (
	"github.com/scopelens/scopelens/constants"
	"github.com/scopelens/scopelens/internal/entity"
)

// EnsureMilestones enforces the pipeline-wide invariant that every extraction
// returns at least one milestone. When the upstream extractor produced
// nothing, a single format-appropriate placeholder record is synthesized so
// downstream consumers always have something to render.
func EnsureMilestones(milestones []entity.Milestone, format constants.Format) []entity.Milestone {
	if len(milestones) > 0 {
		return milestones
	}
	switch format {
	case constants.XLSX:
		return []entity.Milestone{emptyGridFallback()}
	default:
		return []entity.Milestone{emptyTextFallback()}
	}
}

func emptyGridFallback() entity.Milestone {
	return entity.Milestone{
		ID:             "m-0",
		MilestoneLabel: "M1",
		Title:          "Project Data",
		Scope: "Data extracted from Excel file. Please ensure your Excel file has columns: " +
			"Milestone, Title, Scope, Tasks, Hours, Price.",
		Tasks:          []string{"Review extracted data"},
		Exclusions:     []string{},
		EstimatedHours: 0,
		PriceEstimate:  0,
	}
}

func emptyTextFallback() entity.Milestone {
	return entity.Milestone{
		ID:             "m-0",
		MilestoneLabel: "M1",
		Title:          "Document Content",
		Scope:          "No readable text found in document. The file may be image-based or encrypted.",
		Tasks:          []string{"Please ensure the document contains readable text"},
		Exclusions:     []string{},
		EstimatedHours: 0,
		PriceEstimate:  0,
	}
}
