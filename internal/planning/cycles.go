// Package planning generates and orders planning cycles. Quarters are
// sliced into fixed-length iterations; the resulting positional order
// is the convention allocations use to address iterations.
package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// GenerateIterations slices a quarter into count iterations of the
// given length. Iteration ids derive from the quarter id and position,
// so regenerating the same quarter is idempotent. The last iteration is
// clamped to the quarter's end date when the lengths do not divide
// evenly.
func GenerateIterations(quarter model.Cycle, count, weeks int) []model.Cycle {
	if count <= 0 || weeks <= 0 {
		return nil
	}

	iterations := make([]model.Cycle, 0, count)
	for i := 1; i <= count; i++ {
		start := quarter.StartDate.AddDate(0, 0, (i-1)*weeks*7)
		end := start.AddDate(0, 0, weeks*7-1)
		if end.After(quarter.EndDate) {
			end = quarter.EndDate
		}
		iterations = append(iterations, model.Cycle{
			ID:            fmt.Sprintf("%s-iteration-%d", quarter.ID, i),
			Type:          model.CycleIteration,
			Name:          fmt.Sprintf("Iteration %d", i),
			StartDate:     start,
			EndDate:       end,
			ParentCycleID: quarter.ID,
			Status:        model.CycleStatusPlanning,
		})
	}
	return iterations
}

// IterationsOf returns a quarter's iteration cycles ordered by start
// date — the positional sequence the conflict engine consumes.
func IterationsOf(cycles []model.Cycle, quarterID string) []model.Cycle {
	var iterations []model.Cycle
	for _, c := range cycles {
		if c.Type == model.CycleIteration && c.ParentCycleID == quarterID {
			iterations = append(iterations, c)
		}
	}
	sort.Slice(iterations, func(i, j int) bool {
		return iterations[i].StartDate.Before(iterations[j].StartDate)
	})
	return iterations
}

// Quarters returns all quarterly cycles ordered by start date.
func Quarters(cycles []model.Cycle) []model.Cycle {
	var quarters []model.Cycle
	for _, c := range cycles {
		if c.Type == model.CycleQuarterly {
			quarters = append(quarters, c)
		}
	}
	sort.Slice(quarters, func(i, j int) bool {
		return quarters[i].StartDate.Before(quarters[j].StartDate)
	})
	return quarters
}

// NewQuarter builds a quarterly cycle from a name and start date with
// the standard 13-week length.
func NewQuarter(id, name string, start time.Time) model.Cycle {
	return model.Cycle{
		ID:        id,
		Type:      model.CycleQuarterly,
		Name:      name,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 13*7-1),
		Status:    model.CycleStatusPlanning,
	}
}
