// Package analysis implements the deterministic scoring of interview
// answer transcripts: lexical feature extraction, a bounded heuristic
// rating, timestamped issues, and advisory tips.
package analysis

import (
	"regexp"
	"strings"
)

// The three vocabulary sets are fixed and disjoint as shipped, but each
// counter scans the full text independently; nothing enforces exclusion
// across sets. The scoring constants were tuned against that behavior.

var technicalVocabulary = []string{
	"javascript", "typescript", "python", "java", "golang", "react",
	"angular", "node", "database", "sql", "nosql", "api", "rest",
	"graphql", "algorithm", "framework", "backend", "frontend",
	"microservices", "architecture", "cloud", "aws", "azure", "docker",
	"kubernetes", "deployment", "pipeline", "testing", "debugging",
	"git", "agile", "scrum", "cache", "scalability", "security",
	"encryption", "infrastructure",
}

var confidenceVocabulary = []string{
	"achieved", "accomplished", "led", "managed", "delivered",
	"launched", "spearheaded", "improved", "increased", "optimized",
	"streamlined", "mentored", "initiated", "drove", "exceeded",
	"succeeded", "owned", "resolved", "transformed", "pioneered",
}

var fillerVocabulary = []string{
	"um", "uh", "er", "ah", "hmm", "like", "basically", "actually",
	"literally", "honestly", "you know", "i mean", "kind of", "sort of",
	"i guess",
}

// Engagement phrases a candidate uses to involve the interviewer. Any
// occurrence at all is rewarded, so the set errs on the specific side.
var questionVocabulary = []string{
	"does that make sense", "does that answer", "would you like",
	"let me know", "any questions", "happy to elaborate",
	"what do you think",
}

var (
	technicalPattern  = vocabularyPattern(technicalVocabulary)
	confidencePattern = vocabularyPattern(confidenceVocabulary)
	fillerPattern     = vocabularyPattern(fillerVocabulary)
	questionPattern   = vocabularyPattern(questionVocabulary)

	// metricPattern matches a number followed by a unit of quantity, or a
	// bare percentage. Matches are counted non-overlapping.
	metricPattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?(?:%|\s*(?:percent|times|years|months|weeks|days|users|customers|projects|team|members|million|thousand|hours|dollars|revenue|growth|reduction|increase|decrease|improvement)\b)`)
)

// vocabularyPattern builds a case-insensitive whole-word matcher for a
// fixed word or phrase list.
func vocabularyPattern(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
