package classify

import (
	"strings"

	"choque/internal/fold"
)

// Rule assigns Value to any text containing one of Keywords.
type Rule struct {
	Value    string
	Keywords []string
}

// Rules is an ordered rule list. Order is precedence: keyword sets may overlap
// and the first matching rule wins.
type Rules struct {
	rules []Rule
}

// New compiles rules, folding every keyword the same way input text is folded.
func New(rules ...Rule) Rules {
	compiled := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		keywords := make([]string, 0, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			if key := fold.Compact(keyword); key != "" {
				keywords = append(keywords, key)
			}
		}
		compiled = append(compiled, Rule{Value: rule.Value, Keywords: keywords})
	}
	return Rules{rules: compiled}
}

// Classify returns the value of the first rule with a keyword occurring in the
// compacted text.
func (r Rules) Classify(text string) (string, bool) {
	compact := fold.Compact(text)
	if compact == "" {
		return "", false
	}
	for _, rule := range r.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(compact, keyword) {
				return rule.Value, true
			}
		}
	}
	return "", false
}

// ClassifyOr is Classify with a fallback for unmatched text.
func (r Rules) ClassifyOr(text, fallback string) string {
	if value, ok := r.Classify(text); ok {
		return value
	}
	return fallback
}

// Values lists rule values in precedence order, without duplicates.
func (r Rules) Values() []string {
	seen := make(map[string]struct{}, len(r.rules))
	out := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		if _, ok := seen[rule.Value]; ok {
			continue
		}
		seen[rule.Value] = struct{}{}
		out = append(out, rule.Value)
	}
	return out
}
