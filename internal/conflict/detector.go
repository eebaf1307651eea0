// Package conflict statically analyzes the allocations of one planning
// quarter and reports overallocation, sequencing, contention and
// timeline findings with severity classification and an aggregate risk
// score. Detection is a pure function over in-memory snapshots: no
// I/O, no mutation of inputs, and no error paths — entities that do not
// resolve by id are skipped silently.
package conflict

import (
	"math"
	"sort"
	"strconv"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// Input is the snapshot one detection pass reads. Allocations are
// pre-filtered to the selected quarter; the remaining collections are
// unfiltered and serve id lookups. Iterations must be the quarter's
// iteration cycles in positional order, since allocations address
// iterations by 1-based position rather than by cycle id.
type Input struct {
	Allocations []model.Allocation
	Teams       []model.Team
	Epics       []model.Epic
	Projects    []model.Project
	People      []model.Person
	Iterations  []model.Cycle
}

// Detector is one independent detection pass. Passes are stateless and
// order-independent; each emits zero or more conflicts for a single
// category.
type Detector interface {
	Name() string
	Detect(in Input) []model.AllocationConflict
}

// detectors returns the fixed pipeline. Order only affects the position
// of conflicts in the final report, never their content.
func detectors() []Detector {
	return []Detector{
		overallocationDetector{},
		skillMismatchDetector{},
		dependencyViolationDetector{},
		resourceContentionDetector{},
		timelineOverlapDetector{},
	}
}

func epicIndex(epics []model.Epic) map[string]model.Epic {
	idx := make(map[string]model.Epic, len(epics))
	for _, e := range epics {
		if _, ok := idx[e.ID]; !ok {
			idx[e.ID] = e
		}
	}
	return idx
}

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

// formatPercent renders a percentage without trailing zeros, so 120
// prints as "120" and 100.01 as "100.01". Rounding to two decimals
// hides float noise from summing fractional percentages.
func formatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedInts(set map[int]struct{}) []int {
	nums := make([]int, 0, len(set))
	for n := range set {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
