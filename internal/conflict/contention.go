package conflict

import (
	"fmt"
	"sort"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// resourceContentionDetector flags epics that more than one team works
// on within the same iteration. Run-work allocations are excluded:
// contention is defined only over epic-anchored work.
type resourceContentionDetector struct{}

func (resourceContentionDetector) Name() string { return "resource-contention" }

type contentionKey struct {
	epicID    string
	iteration int
}

func (resourceContentionDetector) Detect(in Input) []model.AllocationConflict {
	epics := epicIndex(in.Epics)

	groups := make(map[contentionKey][]model.Allocation)
	for _, a := range in.Allocations {
		if a.EpicID == "" {
			continue
		}
		key := contentionKey{epicID: a.EpicID, iteration: a.IterationNumber}
		groups[key] = append(groups[key], a)
	}

	keys := make([]contentionKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].epicID != keys[j].epicID {
			return keys[i].epicID < keys[j].epicID
		}
		return keys[i].iteration < keys[j].iteration
	})

	var conflicts []model.AllocationConflict
	for _, key := range keys {
		epic, ok := epics[key.epicID]
		if !ok {
			continue
		}

		group := groups[key]
		teamSet := make(map[string]struct{})
		allocationIDs := make([]string, 0, len(group))
		for _, a := range group {
			teamSet[a.TeamID] = struct{}{}
			allocationIDs = append(allocationIDs, a.ID)
		}
		// One conflict per (epic, iteration) group, however many teams
		// are involved.
		if len(teamSet) < 2 {
			continue
		}
		sort.Strings(allocationIDs)

		conflicts = append(conflicts, model.AllocationConflict{
			ID:       fmt.Sprintf("resource-contention-%s-%d", key.epicID, key.iteration),
			Type:     model.ConflictResourceContention,
			Severity: model.SeverityMedium,
			Title:    fmt.Sprintf("Multiple teams on %s in iteration %d", epic.Name, key.iteration),
			Description: fmt.Sprintf("%d teams are allocated to %s in iteration %d; parallel ownership creates coordination overhead and rework.",
				len(teamSet), epic.Name, key.iteration),
			AffectedAllocations: allocationIDs,
			AffectedTeams:       sortedKeys(teamSet),
			AffectedEpics:       []string{key.epicID},
			SuggestedActions: []string{
				fmt.Sprintf("Assign a single owning team for %s", epic.Name),
				"Split the epic so each team has a clearly bounded slice",
			},
			Impact: model.ConflictImpact{
				DelayRisk:     40,
				QualityRisk:   50,
				ResourceWaste: 35,
			},
		})
	}
	return conflicts
}
