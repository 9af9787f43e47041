// Package langscan provides lightweight multi-language detection of date
// keywords and clock-time patterns in free text. It powers the partial
// understanding hints shown after a failed parse and is never used to build
// an actual date.
package langscan

import (
	"regexp"
	"strings"
)

var (
	// clockPattern matches "14:30", "2pm", "9:15 am" and similar.
	clockPattern = regexp.MustCompile(`\d{1,2}(:\d{2})?\s*(am|pm)?`)

	// timeTokenPattern matches whole tokens that are purely a clock time.
	timeTokenPattern = regexp.MustCompile(`^\d{1,2}(:\d{2})?(am|pm)?$`)
)

const maxTitleWords = 5

// ContainsDateKeyword reports whether the text mentions any known date
// vocabulary in any supported language. Matching is case-insensitive.
func ContainsDateKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range dateKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ContainsTimePattern reports whether the text contains a clock-time pattern:
// either the generic digit pattern or a CJK hour marker.
func ContainsTimePattern(text string) bool {
	lower := strings.ToLower(text)
	if clockPattern.MatchString(lower) {
		return true
	}
	for _, marker := range hourMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ExtractPotentialTitle makes a best-effort guess at the event title: it
// drops date/time stopwords and pure clock-time tokens, then returns the
// first five remaining words. An empty string means no guess could be made.
func ExtractPotentialTitle(text string) string {
	words := strings.Fields(text)

	kept := make([]string, 0, maxTitleWords)
	for _, w := range words {
		lower := strings.ToLower(w)
		if _, stop := titleStopwords[lower]; stop {
			continue
		}
		if timeTokenPattern.MatchString(lower) {
			continue
		}
		kept = append(kept, w)
		if len(kept) == maxTitleWords {
			break
		}
	}

	return strings.Join(kept, " ")
}
