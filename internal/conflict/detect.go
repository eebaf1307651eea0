package conflict

import "github.com/heymishy/plan-pulse-compass-sub009/internal/model"

// DetectAllocationConflicts runs every detection pass over the
// allocations of the selected quarter and returns the aggregated
// report. Allocations belonging to other cycles are filtered out before
// any detector runs; teams, epics, projects and people are passed
// through unfiltered for lookups. The call is synchronous, performs no
// I/O and never mutates its arguments, so it is safe to invoke
// repeatedly and from concurrent callers.
func DetectAllocationConflicts(
	allocations []model.Allocation,
	teams []model.Team,
	epics []model.Epic,
	projects []model.Project,
	people []model.Person,
	iterations []model.Cycle,
	selectedCycleID string,
) model.ConflictDetectionResult {
	filtered := make([]model.Allocation, 0, len(allocations))
	for _, a := range allocations {
		if a.CycleID == selectedCycleID {
			filtered = append(filtered, a)
		}
	}

	in := Input{
		Allocations: filtered,
		Teams:       teams,
		Epics:       epics,
		Projects:    projects,
		People:      people,
		Iterations:  iterations,
	}

	var conflicts []model.AllocationConflict
	for _, d := range detectors() {
		conflicts = append(conflicts, d.Detect(in)...)
	}
	return aggregate(conflicts)
}
