package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

func TestTypeIconTotal(t *testing.T) {
	types := []model.ConflictType{
		model.ConflictOverallocation,
		model.ConflictSkillMismatch,
		model.ConflictDependencyViolation,
		model.ConflictResourceContention,
		model.ConflictTimelineOverlap,
		model.ConflictBudgetOverrun,
	}
	seen := make(map[string]struct{})
	for _, ct := range types {
		icon := TypeIcon(ct)
		assert.NotEmpty(t, icon)
		seen[icon] = struct{}{}
	}
	assert.Len(t, seen, len(types), "icons are distinct per type")
	assert.Equal(t, "⚠️", TypeIcon(model.ConflictType("unknown")))
}

func TestSeverityColorTotal(t *testing.T) {
	assert.Equal(t, "text-red-600 bg-red-50", SeverityColor(model.SeverityCritical))
	assert.Equal(t, "text-orange-600 bg-orange-50", SeverityColor(model.SeverityHigh))
	assert.Equal(t, "text-yellow-600 bg-yellow-50", SeverityColor(model.SeverityMedium))
	assert.Equal(t, "text-blue-600 bg-blue-50", SeverityColor(model.SeverityLow))
	assert.Equal(t, "text-gray-600 bg-gray-50", SeverityColor(model.ConflictSeverity("unknown")))
}
