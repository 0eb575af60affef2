package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForField_KeywordMatching(t *testing.T) {
	tests := []struct {
		field        string
		wantCategory string
	}{
		{"senior react developer", "frontend"},
		{"Backend Engineer", "backend"},
		{"java", "backend"},
		{"data scientist", "data"},
		{"SRE", "devops"},
		{"iOS developer", "mobile"},
		{"engineering manager", "management"},
		{"software intern", "early-career"},
		{"accountant", "general"},
		{"", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			set := ForField(tt.field, 0)

			require.NotEmpty(t, set.Questions)
			assert.Equal(t, tt.field, set.Field)
			assert.Equal(t, "bank", set.Source)
			assert.Equal(t, tt.wantCategory, set.Questions[0].Category)
		})
	}
}

func TestForField_FirstMatchWins(t *testing.T) {
	// "frontend" appears before "backend" in bucket order, so a field
	// matching both resolves to frontend.
	set := ForField("frontend and backend generalist", 0)
	assert.Equal(t, "frontend", set.Questions[0].Category)
}

func TestForField_CountCap(t *testing.T) {
	set := ForField("backend", 2)
	assert.Len(t, set.Questions, 2)

	// Zero means all questions in the bucket.
	all := ForField("backend", 0)
	assert.Greater(t, len(all.Questions), 2)

	// A cap larger than the bucket returns the whole bucket.
	large := ForField("backend", 50)
	assert.Equal(t, len(all.Questions), len(large.Questions))
}
