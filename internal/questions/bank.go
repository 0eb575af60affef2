// Package questions produces interview question sets for a target
// field, either from a built-in bank or from an LLM with the bank as
// fallback.
package questions

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// bucket pairs a keyword set with its canned questions. Buckets are
// tested against the field in order; the first keyword hit wins.
type bucket struct {
	keywords  []string
	category  string
	questions []string
}

var buckets = []bucket{
	{
		keywords: []string{"frontend", "front-end", "react", "angular", "vue", "ui"},
		category: "frontend",
		questions: []string{
			"Walk me through how you would structure the state of a complex form with validation.",
			"Tell me about a time you diagnosed a rendering performance problem. What did you measure?",
			"How do you decide between server-side and client-side rendering for a new page?",
			"Describe a component you built that you are proud of. What made it reusable?",
			"How do you make a web application accessible, and how do you verify it?",
		},
	},
	{
		keywords: []string{"backend", "back-end", "server", "api", "java", "golang", "python", "node"},
		category: "backend",
		questions: []string{
			"Describe a service you designed end to end. What were the hardest trade-offs?",
			"Tell me about a production incident you debugged. How did you find the root cause?",
			"How would you design an API that has to stay backward compatible for years?",
			"Walk me through how you would scale a database that has become a bottleneck.",
			"Tell me about a time you improved the latency of an endpoint. What moved the needle?",
		},
	},
	{
		keywords: []string{"data", "analytics", "machine learning", "ml", "scientist"},
		category: "data",
		questions: []string{
			"Tell me about a dataset that turned out to be messier than expected. What did you do?",
			"How do you decide whether a model is good enough to ship?",
			"Describe a pipeline you built. How did you handle late or malformed data?",
			"Walk me through an analysis you did that changed a product decision.",
			"How do you communicate uncertainty in your results to non-technical stakeholders?",
		},
	},
	{
		keywords: []string{"devops", "sre", "infrastructure", "platform", "cloud", "reliability"},
		category: "devops",
		questions: []string{
			"Describe an outage you were on call for. What did the postmortem change?",
			"How do you decide what to alert on, and what belongs in a dashboard instead?",
			"Walk me through a deployment pipeline you built. Where did it catch real mistakes?",
			"Tell me about a time you reduced infrastructure cost without hurting reliability.",
			"How would you migrate a service to a new platform with zero downtime?",
		},
	},
	{
		keywords: []string{"mobile", "ios", "android"},
		category: "mobile",
		questions: []string{
			"Tell me about an app you shipped. What did the release process look like?",
			"How do you handle devices that are offline or on poor connections?",
			"Describe a memory or battery problem you tracked down on a device.",
			"How do you keep an app responsive while doing heavy work in the background?",
			"Walk me through how you would roll out a risky change to millions of devices.",
		},
	},
	{
		keywords: []string{"manager", "management", "lead", "director"},
		category: "management",
		questions: []string{
			"Tell me about a time you had to deliver difficult feedback to a strong performer.",
			"How do you balance technical debt against feature work on your team's roadmap?",
			"Describe a hire you are proud of. What did you see that others missed?",
			"Tell me about a project that was slipping. How did you get it back on track?",
			"How do you grow senior engineers who are already good at their jobs?",
		},
	},
	{
		keywords: []string{"intern", "junior", "entry", "graduate", "student"},
		category: "early-career",
		questions: []string{
			"Tell me about a project, in class or on your own, that you are most proud of.",
			"Describe a time you were stuck on a problem. How did you get unstuck?",
			"What have you taught yourself recently, and how did you go about it?",
			"Tell me about working on a team project where someone wasn't pulling their weight.",
			"Why are you interested in this field, and where do you want to be in two years?",
		},
	},
}

// genericBucket is the fallback when no keyword matches the field.
var genericBucket = bucket{
	category: "general",
	questions: []string{
		"Tell me about yourself and what drew you to this role.",
		"Describe the accomplishment you are most proud of and your specific contribution.",
		"Tell me about a time you failed. What did you learn and change afterwards?",
		"How do you prioritize when everything feels urgent?",
		"Where do you want to grow in the next few years, and how does this role fit?",
	},
}

// ForField returns the bank's question set for a field. The field is
// matched case-insensitively as a substring against each bucket's
// keywords, in bucket order, first match wins. count caps the number
// of questions; zero or negative means all.
func ForField(field string, count int) *types.QuestionSet {
	matched := genericBucket
	fieldLower := strings.ToLower(field)
	for _, b := range buckets {
		if matchesField(fieldLower, b.keywords) {
			matched = b
			break
		}
	}

	questions := matched.questions
	if count > 0 && count < len(questions) {
		questions = questions[:count]
	}

	set := &types.QuestionSet{
		Field:     field,
		Questions: make([]types.Question, len(questions)),
		Source:    "bank",
	}
	for i, prompt := range questions {
		set.Questions[i] = types.Question{Prompt: prompt, Category: matched.category}
	}
	return set
}

func matchesField(fieldLower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(fieldLower, keyword) {
			return true
		}
	}
	return false
}
