package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

func TestReadAllocations(t *testing.T) {
	in := strings.NewReader(
		"team_id,cycle_id,iteration_number,percentage,epic_id,id,notes\n" +
			"T1,cycle-q1,1,70,E1,a1,\n" +
			"T1,cycle-q1,1,50.5,E2,,carry-over\n",
	)

	allocations, err := ReadAllocations(in)
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	assert.Equal(t, model.Allocation{
		ID: "a1", TeamID: "T1", CycleID: "cycle-q1",
		IterationNumber: 1, Percentage: 70, EpicID: "E1",
	}, allocations[0])

	// Missing ids are minted on import.
	assert.NotEmpty(t, allocations[1].ID)
	assert.Equal(t, 50.5, allocations[1].Percentage)
	assert.Equal(t, "carry-over", allocations[1].Notes)
}

func TestReadAllocationsValidation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"missing column",
			"team_id,cycle_id,percentage\nT1,c1,50\n",
			"missing required column",
		},
		{
			"bad percentage",
			"team_id,cycle_id,iteration_number,percentage\nT1,c1,1,lots\n",
			"parsing percentage",
		},
		{
			"epic and run work on one row",
			"team_id,cycle_id,iteration_number,percentage,epic_id,run_work_category_id\nT1,c1,1,50,E1,rw1\n",
			"both epic_id and run_work_category_id",
		},
		{
			"empty file",
			"",
			"empty file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAllocations(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAllocationsRoundTrip(t *testing.T) {
	allocations := []model.Allocation{
		{ID: "a1", TeamID: "T1", CycleID: "cycle-q1", IterationNumber: 1, Percentage: 70, EpicID: "E1"},
		{ID: "a2", TeamID: "T2", CycleID: "cycle-q1", IterationNumber: 3, Percentage: 20.25, RunWorkCategoryID: "rw1", Notes: "support rota"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAllocations(&buf, allocations))

	parsed, err := ReadAllocations(&buf)
	require.NoError(t, err)
	assert.Equal(t, allocations, parsed)
}

func TestReadTeams(t *testing.T) {
	in := strings.NewReader("name,capacity,id\nPlatform,160,T1\nMobile,,\n")

	teams, err := ReadTeams(in)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, model.Team{ID: "T1", Name: "Platform", Capacity: 160}, teams[0])
	assert.Equal(t, "Mobile", teams[1].Name)
	assert.NotEmpty(t, teams[1].ID)
	assert.Zero(t, teams[1].Capacity)
}

func TestWriteConflicts(t *testing.T) {
	result := model.ConflictDetectionResult{
		Conflicts: []model.AllocationConflict{{
			ID:            "overallocation-T1-1",
			Type:          model.ConflictOverallocation,
			Severity:      model.SeverityMedium,
			Title:         "Platform overallocated in iteration 1",
			Description:   "Platform is allocated 120% of capacity in iteration 1, 20% over the limit.",
			AffectedTeams: []string{"T1"},
			AffectedEpics: []string{"E1", "E2"},
			Impact:        model.ConflictImpact{DelayRisk: 40, QualityRisk: 30, ResourceWaste: 24},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteConflicts(&buf, result))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "overallocation-T1-1")
	assert.Contains(t, lines[1], "medium")
	assert.Contains(t, lines[1], "E1;E2")
	assert.Contains(t, lines[1], "24")
}
