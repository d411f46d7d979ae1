package main

import (
	"fmt"
	"regexp"
	"strings"
)

const minJobDescriptionChars = 50

// resumeSignals are section headers and vocabulary that resumes carry and
// arbitrary documents usually don't.
var resumeSignals = []string{
	"experience",
	"education",
	"skills",
	"summary",
	"objective",
	"employment",
	"university",
	"college",
	"degree",
	"certification",
	"projects",
	"references",
	"work history",
	"internship",
}

// minResumeSignals is the threshold below which a document is rejected as
// not-a-resume before any model call is spent on it.
const minResumeSignals = 2

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d[\d\s().\-]{7,}\d)`)
)

// ValidateResumeDocument checks that extracted text actually looks like a
// resume. Contact details count as one signal alongside section vocabulary.
func ValidateResumeDocument(text string) error {
	lower := strings.ToLower(text)

	signals := 0
	for _, s := range resumeSignals {
		if strings.Contains(lower, s) {
			signals++
		}
	}
	if emailRe.MatchString(text) || phoneRe.MatchString(text) {
		signals++
	}

	if signals < minResumeSignals {
		return fmt.Errorf("document does not look like a resume (found %d of %d required signals)", signals, minResumeSignals)
	}
	return nil
}

// ValidateJobDescription rejects job descriptions too short to score
// against.
func ValidateJobDescription(jd string) error {
	if len(strings.TrimSpace(jd)) < minJobDescriptionChars {
		return fmt.Errorf("job description too short (minimum %d characters)", minJobDescriptionChars)
	}
	return nil
}
