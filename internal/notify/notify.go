// Package notify raises desktop notifications for detection findings.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// ConflictsFound notifies when a detection run finds conflicts at or
// above the given severity. Returns without notifying when nothing
// qualifies.
func ConflictsFound(result model.ConflictDetectionResult, minSeverity model.ConflictSeverity) error {
	count := 0
	for _, c := range result.Conflicts {
		if c.Severity.Rank() >= minSeverity.Rank() {
			count++
		}
	}
	if count == 0 {
		return nil
	}

	title := "planpulse: allocation conflicts"
	body := fmt.Sprintf("%d conflict(s) at %s severity or above, risk score %d/100",
		count, minSeverity, result.OverallRiskScore)

	if err := beeep.Notify(title, body, ""); err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	return nil
}
