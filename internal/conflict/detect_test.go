package conflict

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

const testQuarter = "cycle-q1"

func testIterations(n int) []model.Cycle {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	iterations := make([]model.Cycle, n)
	for i := 0; i < n; i++ {
		iterations[i] = model.Cycle{
			ID:            fmt.Sprintf("iter-%d", i+1),
			Type:          model.CycleIteration,
			Name:          fmt.Sprintf("Iteration %d", i+1),
			StartDate:     start.AddDate(0, 0, i*14),
			EndDate:       start.AddDate(0, 0, (i+1)*14-1),
			ParentCycleID: testQuarter,
			Status:        model.CycleStatusPlanning,
		}
	}
	return iterations
}

func alloc(id, teamID string, iteration int, pct float64, epicID string) model.Allocation {
	return model.Allocation{
		ID:              id,
		TeamID:          teamID,
		CycleID:         testQuarter,
		IterationNumber: iteration,
		Percentage:      pct,
		EpicID:          epicID,
	}
}

var (
	testTeams = []model.Team{
		{ID: "T1", Name: "Platform", Capacity: 160},
		{ID: "T2", Name: "Mobile", Capacity: 120},
	}
	testProjects = []model.Project{
		{ID: "P1", Name: "Checkout", Status: model.ProjectActive},
	}
)

func epicsForProject(projectID string, n int) []model.Epic {
	epics := make([]model.Epic, n)
	for i := 0; i < n; i++ {
		epics[i] = model.Epic{
			ID:        fmt.Sprintf("E%d", i+1),
			ProjectID: projectID,
			Name:      fmt.Sprintf("Epic %d", i+1),
		}
	}
	return epics
}

func TestDetectFiltersToSelectedCycle(t *testing.T) {
	other := alloc("a-other", "T1", 1, 180, "")
	other.CycleID = "cycle-q2"

	result := DetectAllocationConflicts(
		[]model.Allocation{other},
		testTeams, nil, nil, nil, testIterations(6), testQuarter,
	)

	assert.Empty(t, result.Conflicts)
	assert.Equal(t, 0, result.Summary.Total)
}

// No allocations for the selected cycle: an empty, zeroed report.
func TestDetectEmptyCycle(t *testing.T) {
	result := DetectAllocationConflicts(nil, testTeams, nil, testProjects, nil, testIterations(6), testQuarter)

	require.NotNil(t, result.Conflicts)
	assert.Empty(t, result.Conflicts)
	assert.Equal(t, 0, result.Summary.Total)
	assert.Equal(t, 0, result.OverallRiskScore)
	assert.Equal(t, 0, result.AffectedTeamsCount)
	assert.Equal(t, 0, result.AffectedEpicsCount)
}

func TestDetectIsIdempotent(t *testing.T) {
	epics := epicsForProject("P1", 3)
	allocations := []model.Allocation{
		alloc("a1", "T1", 1, 70, "E1"),
		alloc("a2", "T1", 1, 50, "E2"),
		alloc("a3", "T2", 1, 40, "E1"),
		alloc("a4", "T2", 2, 60, "E3"),
	}

	first := DetectAllocationConflicts(allocations, testTeams, epics, testProjects, nil, testIterations(6), testQuarter)
	second := DetectAllocationConflicts(allocations, testTeams, epics, testProjects, nil, testIterations(6), testQuarter)

	assert.Equal(t, first, second)
	assert.Equal(t, first.OverallRiskScore, second.OverallRiskScore)

	// Conflict ids are deterministic, so the lists match as sets too.
	firstIDs := conflictIDs(first.Conflicts)
	secondIDs := conflictIDs(second.Conflicts)
	sort.Strings(firstIDs)
	sort.Strings(secondIDs)
	assert.Equal(t, firstIDs, secondIDs)
}

func TestDetectNeverMutatesInputs(t *testing.T) {
	epics := epicsForProject("P1", 3)
	allocations := []model.Allocation{
		alloc("a1", "T1", 1, 70, "E1"),
		alloc("a2", "T1", 1, 50, "E2"),
	}
	original := make([]model.Allocation, len(allocations))
	copy(original, allocations)

	DetectAllocationConflicts(allocations, testTeams, epics, testProjects, nil, testIterations(6), testQuarter)

	assert.Equal(t, original, allocations)
}

func TestDetectRunsAllDetectorsInOrder(t *testing.T) {
	pipeline := detectors()
	require.Len(t, pipeline, 5)
	names := make([]string, len(pipeline))
	for i, d := range pipeline {
		names[i] = d.Name()
	}
	assert.Equal(t, []string{
		"overallocation",
		"skill-mismatch",
		"dependency-violation",
		"resource-contention",
		"timeline-overlap",
	}, names)
}

func TestSkillMismatchAlwaysEmpty(t *testing.T) {
	in := Input{
		Allocations: []model.Allocation{alloc("a1", "T1", 1, 150, "E1")},
		Teams:       testTeams,
		Epics:       epicsForProject("P1", 3),
		Projects:    testProjects,
		Iterations:  testIterations(6),
	}
	assert.Empty(t, skillMismatchDetector{}.Detect(in))
}

// A busy quarter exercising several detectors at once, checked
// end-to-end through the aggregated report.
func TestDetectFullReport(t *testing.T) {
	epics := epicsForProject("P1", 3)
	allocations := []model.Allocation{
		// T1 at 160% in iteration 1: critical overallocation.
		alloc("a1", "T1", 1, 90, "E1"),
		alloc("a2", "T1", 1, 70, "E2"),
		// Both teams on E1 in iteration 2: contention.
		alloc("a3", "T1", 2, 30, "E1"),
		alloc("a4", "T2", 2, 40, "E1"),
		// Project work in iterations 1 and 2: dependency violation,
		// and 3 epics within a 2-iteration span: timeline overlap.
		alloc("a5", "T2", 1, 20, "E3"),
	}

	result := DetectAllocationConflicts(allocations, testTeams, epics, testProjects, nil, testIterations(6), testQuarter)

	byType := make(map[model.ConflictType]int)
	for _, c := range result.Conflicts {
		byType[c.Type]++
	}
	assert.Equal(t, 1, byType[model.ConflictOverallocation])
	assert.Equal(t, 1, byType[model.ConflictDependencyViolation])
	assert.Equal(t, 1, byType[model.ConflictResourceContention])
	assert.Equal(t, 1, byType[model.ConflictTimelineOverlap])

	assert.Equal(t, 4, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Critical)
	assert.Equal(t, 1, result.Summary.High)
	assert.Equal(t, 2, result.Summary.Medium)
	assert.Equal(t, 2, result.AffectedTeamsCount)
	assert.Equal(t, 3, result.AffectedEpicsCount)
	// (100 + 75 + 50 + 50) / 4 = 68.75, rounded.
	assert.Equal(t, 69, result.OverallRiskScore)
}

func conflictIDs(conflicts []model.AllocationConflict) []string {
	ids := make([]string, len(conflicts))
	for i, c := range conflicts {
		ids[i] = c.ID
	}
	return ids
}
