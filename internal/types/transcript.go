// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Segment represents a contiguous timed span of a transcript as produced
// by the speech-to-text collaborator. Start and End are in seconds.
type Segment struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	Speaker    string  `json:"speaker,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Transcript represents a transcribed spoken answer. Text is always
// present (possibly empty); Segments and Duration are optional and only
// used to recover plausible timestamps, never for scoring.
type Transcript struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments,omitempty"`
	Duration float64   `json:"duration,omitempty"`
}
