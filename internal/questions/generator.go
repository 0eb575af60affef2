package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/types"
)

// questionSetSchema validates the JSON the LLM returns before we trust it.
const questionSetSchema = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["prompt"],
				"properties": {
					"prompt": {"type": "string", "minLength": 1},
					"category": {"type": "string"}
				}
			}
		}
	}
}`

// Generator produces question sets from an LLM. A nil Generator (or
// one without a client) always falls back to the bank.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator backed by the given LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate asks the LLM for count questions tailored to the field and
// validates the response against the question-set schema.
func (g *Generator) Generate(ctx context.Context, field string, count int) (*types.QuestionSet, error) {
	if g == nil || g.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}
	if count <= 0 {
		count = 5
	}

	prompt := buildPrompt(field, count)
	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	set, err := parseQuestionSet(raw, field)
	if err != nil {
		return nil, err
	}

	if count < len(set.Questions) {
		set.Questions = set.Questions[:count]
	}
	return set, nil
}

// GenerateOrFallback returns LLM questions when possible and the bank's
// set otherwise. LLM failure is never fatal to the caller.
func (g *Generator) GenerateOrFallback(ctx context.Context, field string, count int) *types.QuestionSet {
	if g != nil && g.client != nil {
		set, err := g.Generate(ctx, field, count)
		if err == nil {
			return set
		}
		log.Printf("question generation fell back to bank: %v", err)
	}
	return ForField(field, count)
}

// buildPrompt constructs the generation prompt for a field.
func buildPrompt(field string, count int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate %d interview questions for a candidate applying for a %q role.\n", count, field))
	sb.WriteString("Mix behavioral and role-specific questions. Each question should be answerable in one to three minutes of speaking.\n")
	sb.WriteString(`Return only JSON of the shape {"questions": [{"prompt": "...", "category": "..."}]}.`)
	return sb.String()
}

// parseQuestionSet validates and decodes the LLM's JSON response.
func parseQuestionSet(raw, field string) (*types.QuestionSet, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(questionSetSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate question JSON: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, fmt.Errorf("question JSON failed schema validation: %s", strings.Join(details, "; "))
	}

	var payload struct {
		Questions []types.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse question JSON: %w", err)
	}

	return &types.QuestionSet{
		Field:     field,
		Questions: payload.Questions,
		Source:    "llm",
	}, nil
}
