package ratelimit

import "strings"

// Match resolves the rule for a request. Exact path matches win; rules
// whose Path ends in "/" fall back to prefix matching so "/sessions/"
// covers "/sessions/{id}". Returns nil when no rule applies.
func Match(path, method string, rules []Rule) *Rule {
	// The health probe is never throttled.
	if path == "/health" && method == "GET" {
		return &Rule{}
	}

	for i := range rules {
		if rules[i].Method == method && rules[i].Path == path {
			return &rules[i]
		}
	}

	for i := range rules {
		r := &rules[i]
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}

	return nil
}
