package planning

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

func q1() model.Cycle {
	return NewQuarter("cycle-q1", "Q1 2026", time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
}

func TestGenerateIterations(t *testing.T) {
	quarter := q1()
	iterations := GenerateIterations(quarter, 6, 2)

	require.Len(t, iterations, 6)
	assert.Equal(t, "cycle-q1-iteration-1", iterations[0].ID)
	assert.Equal(t, "Iteration 1", iterations[0].Name)
	assert.Equal(t, quarter.StartDate, iterations[0].StartDate)
	assert.Equal(t, "cycle-q1", iterations[0].ParentCycleID)
	assert.Equal(t, model.CycleIteration, iterations[0].Type)

	// Iterations tile the quarter back to back.
	for i := 1; i < len(iterations); i++ {
		assert.Equal(t,
			iterations[i-1].EndDate.AddDate(0, 0, 1),
			iterations[i].StartDate,
			"iteration %d should start the day after iteration %d ends", i+1, i)
	}

	// 6 × 2 weeks fills 12 of the 13 weeks; the last iteration must not
	// run past the quarter.
	last := iterations[len(iterations)-1]
	assert.False(t, last.EndDate.After(quarter.EndDate))
}

func TestGenerateIterationsClampsToQuarterEnd(t *testing.T) {
	quarter := q1()
	iterations := GenerateIterations(quarter, 7, 2)

	require.Len(t, iterations, 7)
	assert.Equal(t, quarter.EndDate, iterations[6].EndDate)
}

func TestGenerateIterationsRejectsBadArgs(t *testing.T) {
	assert.Nil(t, GenerateIterations(q1(), 0, 2))
	assert.Nil(t, GenerateIterations(q1(), 6, 0))
}

func TestIterationsOfOrdersByStartDate(t *testing.T) {
	generated := GenerateIterations(q1(), 3, 2)
	// Shuffle in a quarter from another cycle and scrambled order.
	cycles := []model.Cycle{
		generated[2],
		q1(),
		generated[0],
		{ID: "other-iter", Type: model.CycleIteration, ParentCycleID: "cycle-q2"},
		generated[1],
	}

	iterations := IterationsOf(cycles, "cycle-q1")
	require.Len(t, iterations, 3)
	assert.Equal(t, "cycle-q1-iteration-1", iterations[0].ID)
	assert.Equal(t, "cycle-q1-iteration-2", iterations[1].ID)
	assert.Equal(t, "cycle-q1-iteration-3", iterations[2].ID)
}

func TestQuarters(t *testing.T) {
	later := NewQuarter("cycle-q2", "Q2 2026", time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC))
	cycles := append([]model.Cycle{later}, GenerateIterations(later, 2, 2)...)
	cycles = append(cycles, q1())

	quarters := Quarters(cycles)
	require.Len(t, quarters, 2)
	assert.Equal(t, "cycle-q1", quarters[0].ID)
	assert.Equal(t, "cycle-q2", quarters[1].ID)
}

func TestWriteCalendar(t *testing.T) {
	quarter := q1()
	iterations := GenerateIterations(quarter, 2, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteCalendar(&buf, quarter, iterations))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Q1 2026")
	assert.Contains(t, out, "SUMMARY:Iteration 1")
	assert.Contains(t, out, "SUMMARY:Iteration 2")
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
}
