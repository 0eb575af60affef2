package questions

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient is an llm.Client that returns canned JSON or an error.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GetModel(_ llm.ModelTier) string { return "stub-model" }

func (s *stubClient) Close() error { return nil }

func TestGenerate_ValidResponse(t *testing.T) {
	client := &stubClient{response: `{
		"questions": [
			{"prompt": "Tell me about a service you scaled.", "category": "backend"},
			{"prompt": "Describe an incident you debugged.", "category": "backend"}
		]
	}`}

	set, err := NewGenerator(client).Generate(context.Background(), "backend", 5)
	require.NoError(t, err)

	assert.Equal(t, "backend", set.Field)
	assert.Equal(t, "llm", set.Source)
	require.Len(t, set.Questions, 2)
	assert.Equal(t, "Tell me about a service you scaled.", set.Questions[0].Prompt)
}

func TestGenerate_CapsQuestionCount(t *testing.T) {
	client := &stubClient{response: `{
		"questions": [
			{"prompt": "q1"}, {"prompt": "q2"}, {"prompt": "q3"}, {"prompt": "q4"}
		]
	}`}

	set, err := NewGenerator(client).Generate(context.Background(), "backend", 2)
	require.NoError(t, err)
	assert.Len(t, set.Questions, 2)
}

func TestGenerate_SchemaRejection(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing questions key", `{"items": []}`},
		{"empty questions array", `{"questions": []}`},
		{"question without prompt", `{"questions": [{"category": "x"}]}`},
		{"not an object", `["a", "b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{response: tt.response}

			set, err := NewGenerator(client).Generate(context.Background(), "backend", 3)
			assert.Error(t, err)
			assert.Nil(t, set)
		})
	}
}

func TestGenerate_ClientError(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("quota exceeded")}

	set, err := NewGenerator(client).Generate(context.Background(), "backend", 3)
	assert.Error(t, err)
	assert.Nil(t, set)
}

func TestGenerateOrFallback_UsesBankOnError(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("quota exceeded")}

	set := NewGenerator(client).GenerateOrFallback(context.Background(), "backend", 3)
	require.NotNil(t, set)
	assert.Equal(t, "bank", set.Source)
	assert.Len(t, set.Questions, 3)
}

func TestGenerateOrFallback_NilGenerator(t *testing.T) {
	var g *Generator

	set := g.GenerateOrFallback(context.Background(), "devops", 0)
	require.NotNil(t, set)
	assert.Equal(t, "bank", set.Source)
}
