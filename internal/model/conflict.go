package model

// ConflictType classifies an allocation conflict. Six categories exist;
// budget-overrun is reserved and not yet produced by any detector.
type ConflictType string

const (
	ConflictOverallocation      ConflictType = "overallocation"
	ConflictSkillMismatch       ConflictType = "skill-mismatch"
	ConflictDependencyViolation ConflictType = "dependency-violation"
	ConflictResourceContention  ConflictType = "resource-contention"
	ConflictTimelineOverlap     ConflictType = "timeline-overlap"
	ConflictBudgetOverrun       ConflictType = "budget-overrun"
)

func (t ConflictType) String() string { return string(t) }

func (t ConflictType) IsValid() bool {
	switch t {
	case ConflictOverallocation, ConflictSkillMismatch, ConflictDependencyViolation,
		ConflictResourceContention, ConflictTimelineOverlap, ConflictBudgetOverrun:
		return true
	default:
		return false
	}
}

// ConflictSeverity ranks conflicts from low to critical. The ordering
// drives both display and the weighted risk score.
type ConflictSeverity string

const (
	SeverityLow      ConflictSeverity = "low"
	SeverityMedium   ConflictSeverity = "medium"
	SeverityHigh     ConflictSeverity = "high"
	SeverityCritical ConflictSeverity = "critical"
)

func (s ConflictSeverity) String() string { return string(s) }

func (s ConflictSeverity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// Weight returns the severity's contribution to the overall risk score.
func (s ConflictSeverity) Weight() int {
	switch s {
	case SeverityCritical:
		return 100
	case SeverityHigh:
		return 75
	case SeverityMedium:
		return 50
	case SeverityLow:
		return 25
	default:
		return 0
	}
}

// Rank returns an ordinal for sorting; higher is more severe.
func (s ConflictSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// ConflictImpact estimates the fallout of a conflict on three axes,
// each in [0,100].
type ConflictImpact struct {
	DelayRisk     float64 `json:"delayRisk"`
	QualityRisk   float64 `json:"qualityRisk"`
	ResourceWaste float64 `json:"resourceWaste"`
}

// AllocationConflict is one finding produced by a detection pass. IDs
// are deterministic for identical inputs, so re-running detection on
// unchanged data yields identical conflicts.
type AllocationConflict struct {
	ID                  string           `json:"id"`
	Type                ConflictType     `json:"type"`
	Severity            ConflictSeverity `json:"severity"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	AffectedAllocations []string         `json:"affectedAllocations"`
	AffectedTeams       []string         `json:"affectedTeams"`
	AffectedEpics       []string         `json:"affectedEpics"`
	SuggestedActions    []string         `json:"suggestedActions"`
	Impact              ConflictImpact   `json:"impact"`
}

// ConflictSummary counts conflicts by severity.
type ConflictSummary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Total    int `json:"total"`
}

// ConflictDetectionResult is the transient report for one planning
// cycle; it is recomputed from current allocations on demand and never
// persisted.
type ConflictDetectionResult struct {
	Conflicts          []AllocationConflict `json:"conflicts"`
	Summary            ConflictSummary      `json:"summary"`
	AffectedTeamsCount int                  `json:"affectedTeamsCount"`
	AffectedEpicsCount int                  `json:"affectedEpicsCount"`
	OverallRiskScore   int                  `json:"overallRiskScore"`
}
