package conflict

import (
	"fmt"
	"sort"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// overallocationDetector flags every (team, iteration) pair whose
// allocation percentages sum past 100.
type overallocationDetector struct{}

func (overallocationDetector) Name() string { return "overallocation" }

// overallocationLevels maps summed percentage to severity; thresholds
// are exclusive lower bounds, checked most severe first. Sums of
// exactly 100 are full utilisation, not a conflict.
var overallocationLevels = []struct {
	above    float64
	severity model.ConflictSeverity
}{
	{150, model.SeverityCritical},
	{125, model.SeverityHigh},
	{110, model.SeverityMedium},
	{100, model.SeverityLow},
}

func overallocationSeverity(total float64) (model.ConflictSeverity, bool) {
	for _, level := range overallocationLevels {
		if total > level.above {
			return level.severity, true
		}
	}
	return "", false
}

func (overallocationDetector) Detect(in Input) []model.AllocationConflict {
	var conflicts []model.AllocationConflict
	for _, team := range in.Teams {
		// Iterations are addressed positionally: position in the
		// ordered iteration sequence is the iteration number.
		for iteration := 1; iteration <= len(in.Iterations); iteration++ {
			var total float64
			var allocationIDs []string
			epicSet := make(map[string]struct{})
			for _, a := range in.Allocations {
				if a.TeamID != team.ID || a.IterationNumber != iteration {
					continue
				}
				total += a.Percentage
				allocationIDs = append(allocationIDs, a.ID)
				if a.EpicID != "" {
					epicSet[a.EpicID] = struct{}{}
				}
			}

			severity, ok := overallocationSeverity(total)
			if !ok {
				continue
			}

			over := total - 100
			sort.Strings(allocationIDs)
			conflicts = append(conflicts, model.AllocationConflict{
				ID:       fmt.Sprintf("overallocation-%s-%d", team.ID, iteration),
				Type:     model.ConflictOverallocation,
				Severity: severity,
				Title:    fmt.Sprintf("%s overallocated in iteration %d", team.Name, iteration),
				Description: fmt.Sprintf("%s is allocated %s%% of capacity in iteration %d, %s%% over the limit.",
					team.Name, formatPercent(total), iteration, formatPercent(over)),
				AffectedAllocations: allocationIDs,
				AffectedTeams:       []string{team.ID},
				AffectedEpics:       sortedKeys(epicSet),
				SuggestedActions: []string{
					fmt.Sprintf("Reduce %s's allocations in iteration %d to 100%% or below", team.Name, iteration),
					"Move lower-priority work to a later iteration",
					"Share the load with a team that has spare capacity",
				},
				Impact: model.ConflictImpact{
					DelayRisk:     clamp100(over * 2),
					QualityRisk:   clamp100(over * 1.5),
					ResourceWaste: clamp100(over * 1.2),
				},
			})
		}
	}
	return conflicts
}
