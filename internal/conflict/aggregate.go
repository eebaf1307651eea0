package conflict

import (
	"math"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// aggregate derives the summary counts, affected-entity cardinalities
// and the overall risk score from a concatenated conflict list. Teams
// and epics are counted as set unions: an id appearing in several
// conflicts counts once.
func aggregate(conflicts []model.AllocationConflict) model.ConflictDetectionResult {
	if conflicts == nil {
		conflicts = []model.AllocationConflict{}
	}

	summary := model.ConflictSummary{Total: len(conflicts)}
	teamSet := make(map[string]struct{})
	epicSet := make(map[string]struct{})
	weightSum := 0

	for _, c := range conflicts {
		switch c.Severity {
		case model.SeverityCritical:
			summary.Critical++
		case model.SeverityHigh:
			summary.High++
		case model.SeverityMedium:
			summary.Medium++
		case model.SeverityLow:
			summary.Low++
		}
		for _, id := range c.AffectedTeams {
			teamSet[id] = struct{}{}
		}
		for _, id := range c.AffectedEpics {
			epicSet[id] = struct{}{}
		}
		weightSum += c.Severity.Weight()
	}

	score := 0
	if len(conflicts) > 0 {
		score = int(math.Round(float64(weightSum) / float64(len(conflicts)*100) * 100))
	}

	return model.ConflictDetectionResult{
		Conflicts:          conflicts,
		Summary:            summary,
		AffectedTeamsCount: len(teamSet),
		AffectedEpicsCount: len(epicSet),
		OverallRiskScore:   score,
	}
}
