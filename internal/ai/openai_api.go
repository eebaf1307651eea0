package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// OpenAIProvider asks an OpenAI chat model for a remediation plan,
// constrained to the RemediationPlan schema via structured outputs.
type OpenAIProvider struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

func NewOpenAI(apiKey, model string, logger *slog.Logger) *OpenAIProvider {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logger,
	}
}

var remediationPlanSchema = generateSchema(RemediationPlan{})

func generateSchema(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}

func (p *OpenAIProvider) SuggestRemediation(ctx context.Context, result model.ConflictDetectionResult) (*RemediationPlan, error) {
	userPrompt, err := buildUserPrompt(result)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("requesting remediation plan",
		"model", p.model, "conflicts", result.Summary.Total)

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "remediation_plan",
					Description: openai.String("Remediation plan for allocation conflicts"),
					Schema:      remediationPlanSchema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("requesting completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("completion returned no choices")
	}

	var plan RemediationPlan
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &plan); err != nil {
		return nil, fmt.Errorf("parsing remediation plan: %w", err)
	}

	p.logger.Debug("received remediation plan", "actions", len(plan.Actions))
	return &plan, nil
}
