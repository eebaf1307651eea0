package conflict

import (
	"fmt"
	"sort"
	"strings"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// dependencyViolationDetector flags projects whose epics are planned in
// consecutive iterations. True dependency graphs are not modelled, so
// back-to-back parallel epic work on one project is used as a proxy for
// undiscovered sequencing dependencies.
type dependencyViolationDetector struct{}

func (dependencyViolationDetector) Name() string { return "dependency-violation" }

func (dependencyViolationDetector) Detect(in Input) []model.AllocationConflict {
	epics := epicIndex(in.Epics)

	var conflicts []model.AllocationConflict
	for _, project := range in.Projects {
		var projectAllocations []model.Allocation
		for _, a := range in.Allocations {
			if a.EpicID == "" {
				continue
			}
			epic, ok := epics[a.EpicID]
			if !ok || epic.ProjectID != project.ID {
				continue
			}
			projectAllocations = append(projectAllocations, a)
		}

		iterationSet := make(map[int]struct{})
		for _, a := range projectAllocations {
			iterationSet[a.IterationNumber] = struct{}{}
		}
		if len(iterationSet) < 2 {
			continue
		}

		// One conflict per project as soon as any adjacent pair of
		// used iteration numbers exists, regardless of how many pairs
		// are adjacent.
		iterations := sortedInts(iterationSet)
		adjacent := false
		for i := 1; i < len(iterations); i++ {
			if iterations[i]-iterations[i-1] == 1 {
				adjacent = true
				break
			}
		}
		if !adjacent {
			continue
		}

		allocationIDs := make([]string, 0, len(projectAllocations))
		teamSet := make(map[string]struct{})
		epicSet := make(map[string]struct{})
		for _, a := range projectAllocations {
			allocationIDs = append(allocationIDs, a.ID)
			teamSet[a.TeamID] = struct{}{}
			epicSet[a.EpicID] = struct{}{}
		}
		sort.Strings(allocationIDs)

		conflicts = append(conflicts, model.AllocationConflict{
			ID:       fmt.Sprintf("dependency-violation-%s", project.ID),
			Type:     model.ConflictDependencyViolation,
			Severity: model.SeverityMedium,
			Title:    fmt.Sprintf("Possible sequencing dependency in %s", project.Name),
			Description: fmt.Sprintf("Epics in %s are planned across consecutive iterations (%s); undeclared dependencies between them could stall the later work.",
				project.Name, joinInts(iterations)),
			AffectedAllocations: allocationIDs,
			AffectedTeams:       sortedKeys(teamSet),
			AffectedEpics:       sortedKeys(epicSet),
			SuggestedActions: []string{
				fmt.Sprintf("Review epic sequencing for %s before the cycle starts", project.Name),
				"Confirm the epics can genuinely run in parallel, or stagger them",
			},
			Impact: model.ConflictImpact{
				DelayRisk:     60,
				QualityRisk:   40,
				ResourceWaste: 30,
			},
		})
	}
	return conflicts
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
