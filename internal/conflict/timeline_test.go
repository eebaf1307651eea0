package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

func timelineInput(epics []model.Epic, allocations ...model.Allocation) Input {
	return Input{
		Allocations: allocations,
		Teams:       testTeams,
		Epics:       epics,
		Projects:    testProjects,
		Iterations:  testIterations(6),
	}
}

// Three epics squeezed into iterations 1–2: compressed timeline.
func TestTimelineCompressedProject(t *testing.T) {
	epics := epicsForProject("P1", 3)
	in := timelineInput(epics,
		alloc("a1", "T1", 1, 30, "E1"),
		alloc("a2", "T1", 2, 30, "E2"),
		alloc("a3", "T2", 2, 30, "E3"),
	)

	conflicts := timelineOverlapDetector{}.Detect(in)
	require.Len(t, conflicts, 1)

	c := conflicts[0]
	assert.Equal(t, "timeline-overlap-P1", c.ID)
	assert.Equal(t, model.ConflictTimelineOverlap, c.Type)
	assert.Equal(t, model.SeverityHigh, c.Severity)
	assert.Equal(t, []string{"E1", "E2", "E3"}, c.AffectedEpics)
	assert.ElementsMatch(t, []string{"T1", "T2"}, c.AffectedTeams)
	assert.Equal(t, model.ConflictImpact{DelayRisk: 80, QualityRisk: 70, ResourceWaste: 20}, c.Impact)
}

func TestTimelineWideSpanIsFine(t *testing.T) {
	epics := epicsForProject("P1", 3)
	in := timelineInput(epics,
		alloc("a1", "T1", 1, 30, "E1"),
		alloc("a2", "T1", 3, 30, "E2"),
		alloc("a3", "T2", 4, 30, "E3"),
	)
	assert.Empty(t, timelineOverlapDetector{}.Detect(in))
}

func TestTimelineFewEpicsIsFine(t *testing.T) {
	epics := epicsForProject("P1", 2)
	in := timelineInput(epics,
		alloc("a1", "T1", 1, 30, "E1"),
		alloc("a2", "T1", 1, 30, "E2"),
	)
	assert.Empty(t, timelineOverlapDetector{}.Detect(in))
}

// A project whose epics have no allocations yet has no timeline to
// judge.
func TestTimelineSkipsUnallocatedProjects(t *testing.T) {
	epics := epicsForProject("P1", 4)
	in := timelineInput(epics)
	assert.Empty(t, timelineOverlapDetector{}.Detect(in))
}

// A single allocated iteration is a span of one: still compressed.
func TestTimelineSingleIterationSpan(t *testing.T) {
	epics := epicsForProject("P1", 3)
	in := timelineInput(epics,
		alloc("a1", "T1", 3, 30, "E1"),
	)

	conflicts := timelineOverlapDetector{}.Detect(in)
	require.Len(t, conflicts, 1)
	assert.Equal(t, model.SeverityHigh, conflicts[0].Severity)
}
