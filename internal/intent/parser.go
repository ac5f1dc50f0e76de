// Package intent extracts a target location from transcribed speech using a
// fixed ordered pattern list. Anything fancier is out of scope; transcripts
// that fit none of the patterns simply yield no location.
package intent

import (
	"regexp"
	"strings"
)

// Ordered: the first pattern whose capture survives the stop-word check wins.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`weather in ([a-z ]+)`),
	regexp.MustCompile(`weather for ([a-z ]+)`),
	regexp.MustCompile(`^([a-z ]+) weather$`),
	regexp.MustCompile(`what.*weather.* in ([a-z ]+)`),
	regexp.MustCompile(`how.*weather.* in ([a-z ]+)`),
}

// stopWords are captures that mean a pattern matched filler text rather than
// a place name.
var stopWords = map[string]struct{}{
	"the":   {},
	"today": {},
	"now":   {},
	"like":  {},
	"there": {},
	"here":  {},
}

// ParseLocation extracts a location from a transcript. Matching is
// case-insensitive; a successful result is title-cased. The second return is
// false when no pattern produced a usable location, which callers treat as
// "fall back to the session's last known location, or prompt".
func ParseLocation(text string) (string, bool) {
	lowered := strings.ToLower(text)

	for _, re := range locationPatterns {
		m := re.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		loc := strings.TrimSpace(m[1])
		if loc == "" {
			continue
		}
		if _, ok := stopWords[loc]; ok {
			continue
		}
		return titleCase(loc), true
	}
	return "", false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
