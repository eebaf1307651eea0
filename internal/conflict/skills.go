package conflict

import "github.com/heymishy/plan-pulse-compass-sub009/internal/model"

// skillMismatchDetector is a placeholder pass: the data model carries
// no skill-to-person or skill-to-team linkage, so it always comes back
// empty. It stays in the pipeline so a skills-aware pass can replace it
// without touching the orchestrator.
type skillMismatchDetector struct{}

func (skillMismatchDetector) Name() string { return "skill-mismatch" }

func (skillMismatchDetector) Detect(Input) []model.AllocationConflict {
	return nil
}
