//nolint:revive // types is a standard Go package name pattern
package types

// Question is a single interview prompt.
type Question struct {
	Prompt   string `json:"prompt"`
	Category string `json:"category,omitempty"`
}

// QuestionSet is an ordered set of questions for a target field.
// Source records how the set was produced ("bank" or "llm").
type QuestionSet struct {
	Field     string     `json:"field"`
	Questions []Question `json:"questions"`
	Source    string     `json:"source,omitempty"`
}
