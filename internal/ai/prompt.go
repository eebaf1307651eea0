package ai

import (
	"encoding/json"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

const systemPrompt = `You are a resource-planning assistant. You are given the conflict
report for one planning quarter: overallocated teams, possible
sequencing dependencies, multi-team contention on epics and compressed
project timelines. Propose the smallest set of concrete plan changes
that resolves the highest-severity conflicts first. Refer to conflicts
by their id. Do not invent teams, epics or iterations that the report
does not mention.`

func buildUserPrompt(result model.ConflictDetectionResult) (string, error) {
	report, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return fmt.Sprintf(
		"Conflict report (%d conflicts, overall risk %d/100):\n%s",
		result.Summary.Total, result.OverallRiskScore, report,
	), nil
}
