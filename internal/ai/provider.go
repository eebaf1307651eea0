package ai

import (
	"context"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// Provider turns a conflict detection report into a remediation plan.
type Provider interface {
	SuggestRemediation(ctx context.Context, result model.ConflictDetectionResult) (*RemediationPlan, error)
}
