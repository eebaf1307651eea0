package ai

// RemediationPlan is the structured answer the model is constrained to.
type RemediationPlan struct {
	Summary string              `json:"summary" jsonschema_description:"Two or three sentences describing the overall state of the plan"`
	Actions []RemediationAction `json:"actions" jsonschema_description:"Concrete steps, most urgent first"`
}

type RemediationAction struct {
	ConflictID string `json:"conflict_id" jsonschema_description:"Id of the conflict this action addresses"`
	Action     string `json:"action" jsonschema_description:"What to change in the plan"`
	Rationale  string `json:"rationale" jsonschema_description:"Why this action resolves or reduces the conflict"`
	Priority   int    `json:"priority" jsonschema_description:"1 is most urgent"`
}
