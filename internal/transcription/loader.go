package transcription

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/interview-coach/internal/types"
)

// fileSegment accepts segment timestamps as either numeric seconds or
// clock strings ("HH:MM:SS", "M:SS"), since offline transcription tools
// emit both shapes.
type fileSegment struct {
	Start json.RawMessage `json:"start"`
	End   json.RawMessage `json:"end"`
	Text  string          `json:"text"`
}

type fileTranscript struct {
	Text     string        `json:"text"`
	Segments []fileSegment `json:"segments"`
	Duration float64       `json:"duration"`
}

// LoadFile reads a transcript from disk. JSON files are parsed into the
// full transcript shape; anything else is treated as plain text.
func LoadFile(path string) (*types.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if !strings.HasPrefix(trimmed, "{") {
		if !utf8.ValidString(trimmed) {
			return nil, fmt.Errorf("transcript file %s is not valid UTF-8 text", path)
		}
		return &types.Transcript{Text: trimmed}, nil
	}

	var parsed fileTranscript
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse transcript JSON: %w", err)
	}

	transcript := &types.Transcript{
		Text:     parsed.Text,
		Duration: parsed.Duration,
		Segments: make([]types.Segment, len(parsed.Segments)),
	}
	for i, s := range parsed.Segments {
		start, err := parseTimestampValue(s.Start)
		if err != nil {
			return nil, fmt.Errorf("segment %d start: %w", i, err)
		}
		end, err := parseTimestampValue(s.End)
		if err != nil {
			return nil, fmt.Errorf("segment %d end: %w", i, err)
		}
		transcript.Segments[i] = types.Segment{Start: start, End: end, Text: s.Text}
	}

	if transcript.Duration == 0 && len(transcript.Segments) > 0 {
		transcript.Duration = transcript.Segments[len(transcript.Segments)-1].End
	}
	return transcript, nil
}

// parseTimestampValue converts a raw JSON timestamp (number or clock
// string) to seconds. A missing value parses as zero.
func parseTimestampValue(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return 0, fmt.Errorf("timestamp must be a number or clock string, got %s", string(raw))
	}
	return ParseClock(str)
}

// ParseClock converts "HH:MM:SS", "MM:SS", or plain seconds ("90", "7.5")
// to seconds.
func ParseClock(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}

	var total float64
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid clock value %q", s)
		}
		total = total*60 + v
	}
	return total, nil
}
