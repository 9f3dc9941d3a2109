package extract

import "github.com/scopelens/scopelens/internal/entity"

// Aggregate folds per-milestone hours and price into the project ballpark.
// No rounding; sums carry the same precision as the inputs.
func Aggregate(milestones []entity.Milestone) entity.Ballpark {
	var total entity.Ballpark
	for _, m := range milestones {
		total.Hours += m.EstimatedHours
		total.Price += m.PriceEstimate
	}
	return total
}
