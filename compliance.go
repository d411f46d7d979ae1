package main

import (
	"regexp"
	"strings"
)

// ComplianceRule flags vocabulary that must never appear in candidate
// feedback. Categories follow the feedback prompt: subjective judgments
// and protected characteristics are out, only skill and evidence language
// is allowed.
type ComplianceRule struct {
	Name     string
	Category string // subjective, protected_class
	Severity string // critical, major
	Terms    []string
}

type ComplianceFinding struct {
	Rule     string `json:"rule"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Term     string `json:"term"`
}

var ComplianceRules = []ComplianceRule{
	{
		Name:     "SUBJECTIVE_JUDGMENT",
		Category: "subjective",
		Severity: "major",
		Terms:    []string{"personality", "tone", "enthusiasm", "enthusiastic", "culture fit", "cultural fit", "attitude", "soft skills", "likeable", "passion", "passionate", "energy level"},
	},
	{
		Name:     "AGE_REFERENCE",
		Category: "protected_class",
		Severity: "critical",
		Terms:    []string{"age", "too old", "too young", "overqualified for your age", "recent graduate", "digital native"},
	},
	{
		Name:     "GENDER_REFERENCE",
		Category: "protected_class",
		Severity: "critical",
		Terms:    []string{"gender", "maternity", "pregnancy", "pregnant", "family plans"},
	},
	{
		Name:     "ORIGIN_REFERENCE",
		Category: "protected_class",
		Severity: "critical",
		Terms:    []string{"nationality", "national origin", "accent", "native speaker", "citizenship"},
	},
	{
		Name:     "OTHER_PROTECTED_REFERENCE",
		Category: "protected_class",
		Severity: "critical",
		Terms:    []string{"religion", "religious", "disability", "disabled", "marital status", "race", "ethnicity"},
	},
}

// wordBoundaryMatchers holds compiled patterns for single-word terms, so
// "age" does not fire inside "language" or "manage".
var wordBoundaryMatchers = buildMatchers()

func buildMatchers() map[string]*regexp.Regexp {
	matchers := make(map[string]*regexp.Regexp)
	for _, rule := range ComplianceRules {
		for _, term := range rule.Terms {
			if strings.ContainsRune(term, ' ') {
				continue
			}
			matchers[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		}
	}
	return matchers
}

// ScanFeedback runs the rule table over generated feedback text. Matching
// is case-insensitive; single-word terms match on word boundaries, phrases
// by substring.
func ScanFeedback(text string) []ComplianceFinding {
	lower := strings.ToLower(text)

	var findings []ComplianceFinding
	for _, rule := range ComplianceRules {
		for _, term := range rule.Terms {
			matched := false
			if re, ok := wordBoundaryMatchers[term]; ok {
				matched = re.MatchString(lower)
			} else {
				matched = strings.Contains(lower, term)
			}
			if matched {
				findings = append(findings, ComplianceFinding{
					Rule:     rule.Name,
					Category: rule.Category,
					Severity: rule.Severity,
					Term:     term,
				})
			}
		}
	}
	return findings
}
