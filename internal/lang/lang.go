// Package lang provides text normalization and the three-way language
// classification (Hindi / Hinglish / English) used to pick the reply
// language for every conversation turn.
package lang

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Language is the coarse language tag attached to a conversation.
type Language string

const (
	// Hindi means the message carries Devanagari script.
	Hindi Language = "hi"
	// Hinglish means romanized Hindi mixed with English.
	Hinglish Language = "hinglish"
	// English is the default formal register.
	English Language = "en"
)

// Normalize lowercases the text, collapses whitespace runs to single spaces
// and trims the ends. It is the canonical form used for keyword matching.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// hinglishMarkers are romanized Hindi words that a statistical detector
// would mis-tag as English.
var hinglishMarkers = []string{
	"hai", "nahi", "acha", "kya", "kaise", "thoda", "bimari", "bukhar", "dard",
}

// FallbackDetector is the statistical last-resort language identifier.
// ok is false when the text is too short or ambiguous to classify.
type FallbackDetector interface {
	DetectISO(text string) (code string, ok bool)
}

type linguaDetector struct {
	inner lingua.LanguageDetector
}

// NewLinguaDetector builds a lingua-go detector restricted to the two
// languages the bot distinguishes statistically.
func NewLinguaDetector() FallbackDetector {
	return &linguaDetector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Hindi).
			Build(),
	}
}

func (d *linguaDetector) DetectISO(text string) (string, bool) {
	language, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}

// Classifier decides the language tag for a raw message.
type Classifier struct {
	fallback FallbackDetector
}

// NewClassifier constructs a Classifier. The fallback detector is only
// consulted when neither script nor marker words decide the language.
func NewClassifier(fallback FallbackDetector) *Classifier {
	return &Classifier{fallback: fallback}
}

// Detect classifies text in three tiers, first match wins:
// Devanagari script, romanized Hindi marker words, statistical detection.
// Detector failure defaults to English.
func (c *Classifier) Detect(text string) Language {
	trimmed := strings.TrimSpace(text)
	if containsDevanagari(trimmed) {
		return Hindi
	}
	lower := strings.ToLower(trimmed)
	for _, w := range hinglishMarkers {
		if strings.Contains(lower, w) {
			return Hinglish
		}
	}
	code, ok := c.fallback.DetectISO(trimmed)
	if ok && code == "hi" {
		return Hindi
	}
	return English
}

func containsDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// Instruction returns the output-language directive embedded verbatim in
// every generation prompt. It is the only language signal the generator
// receives.
func Instruction(l Language) string {
	switch l {
	case Hindi:
		return "Reply strictly in Hindi only."
	case Hinglish:
		return "Reply in casual Hinglish (Roman Hindi + English mix)."
	default:
		return "Reply in formal English, like a doctor."
	}
}
