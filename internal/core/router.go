package core

import "strings"

// route is the handling path chosen for a message with no active session.
type route int

const (
	routeGreeting route = iota
	routeScheme
	routeSymptom
	routeFallback
)

// greetingTokens short-circuit the whole pipeline on an exact match of the
// normalized text.
var greetingTokens = map[string]struct{}{
	"hi":      {},
	"hello":   {},
	"hey":     {},
	"namaste": {},
	"hola":    {},
}

var schemeKeywords = []string{
	"scheme", "yojana", "pm-jay", "eligibility", "insurance", "coverage",
}

var symptomKeywords = []string{
	"fever", "bukhar", "dard", "pain", "thakan", "fatigue",
	"khansi", "cough", "symptom", "headache",
}

// classify picks the handling path for normalized text, scheme intent
// before symptom intent. Keyword matching is substring containment, so
// compound words and typos still match ("feverish", "pm-jay2024").
func classify(norm string) route {
	if _, ok := greetingTokens[norm]; ok {
		return routeGreeting
	}
	if containsAny(norm, schemeKeywords) {
		return routeScheme
	}
	if containsAny(norm, symptomKeywords) {
		return routeSymptom
	}
	return routeFallback
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
