package conflict

import (
	"fmt"
	"sort"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// timelineOverlapDetector flags projects that compress three or more
// epics into a span of at most two iterations. Effort estimates are
// deliberately ignored; the epic count alone is the heuristic.
type timelineOverlapDetector struct{}

func (timelineOverlapDetector) Name() string { return "timeline-overlap" }

func (timelineOverlapDetector) Detect(in Input) []model.AllocationConflict {
	var conflicts []model.AllocationConflict
	for _, project := range in.Projects {
		projectEpicSet := make(map[string]struct{})
		for _, e := range in.Epics {
			if e.ProjectID == project.ID {
				projectEpicSet[e.ID] = struct{}{}
			}
		}
		if len(projectEpicSet) < 3 {
			continue
		}

		var allocationIDs []string
		teamSet := make(map[string]struct{})
		minIteration, maxIteration := 0, 0
		for _, a := range in.Allocations {
			if _, ok := projectEpicSet[a.EpicID]; !ok {
				continue
			}
			if len(allocationIDs) == 0 {
				minIteration, maxIteration = a.IterationNumber, a.IterationNumber
			} else {
				if a.IterationNumber < minIteration {
					minIteration = a.IterationNumber
				}
				if a.IterationNumber > maxIteration {
					maxIteration = a.IterationNumber
				}
			}
			allocationIDs = append(allocationIDs, a.ID)
			teamSet[a.TeamID] = struct{}{}
		}
		// Projects with no allocated epics have no timeline yet.
		if len(allocationIDs) == 0 {
			continue
		}

		span := maxIteration - minIteration + 1
		if span > 2 {
			continue
		}
		sort.Strings(allocationIDs)

		conflicts = append(conflicts, model.AllocationConflict{
			ID:       fmt.Sprintf("timeline-overlap-%s", project.ID),
			Type:     model.ConflictTimelineOverlap,
			Severity: model.SeverityHigh,
			Title:    fmt.Sprintf("Compressed timeline for %s", project.Name),
			Description: fmt.Sprintf("%s packs %d epics into a %d-iteration window; the schedule leaves no room for sequencing or slippage.",
				project.Name, len(projectEpicSet), span),
			AffectedAllocations: allocationIDs,
			AffectedTeams:       sortedKeys(teamSet),
			AffectedEpics:       sortedKeys(projectEpicSet),
			SuggestedActions: []string{
				fmt.Sprintf("Spread %s's epics across more iterations", project.Name),
				"Re-estimate epic effort before committing the plan",
			},
			Impact: model.ConflictImpact{
				DelayRisk:     80,
				QualityRisk:   70,
				ResourceWaste: 20,
			},
		})
	}
	return conflicts
}
