package conflict

import "github.com/heymishy/plan-pulse-compass-sub009/internal/model"

var typeIcons = map[model.ConflictType]string{
	model.ConflictOverallocation:      "⚡",
	model.ConflictSkillMismatch:       "🎯",
	model.ConflictDependencyViolation: "🔗",
	model.ConflictResourceContention:  "🤝",
	model.ConflictTimelineOverlap:     "📅",
	model.ConflictBudgetOverrun:       "💰",
}

var severityColors = map[model.ConflictSeverity]string{
	model.SeverityCritical: "text-red-600 bg-red-50",
	model.SeverityHigh:     "text-orange-600 bg-orange-50",
	model.SeverityMedium:   "text-yellow-600 bg-yellow-50",
	model.SeverityLow:      "text-blue-600 bg-blue-50",
}

// TypeIcon maps a conflict type to its display glyph.
func TypeIcon(t model.ConflictType) string {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return "⚠️"
}

// SeverityColor maps a severity to the CSS classes UI consumers render
// it with.
func SeverityColor(s model.ConflictSeverity) string {
	if color, ok := severityColors[s]; ok {
		return color
	}
	return "text-gray-600 bg-gray-50"
}
