package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDetector struct {
	code string
	ok   bool
}

func (s stubDetector) DetectISO(string) (string, bool) { return s.code, s.ok }

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello   World ", "hello world"},
		{"I HAVE\tFEVER", "i have fever"},
		{"", ""},
		{"   ", ""},
		{"already normal", "already normal"},
		{"Line\nbreaks\n too", "line breaks too"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  Hello   World ", "mujhe BUKHAR hai", "", "a  b\t c"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestDetectDevanagariWinsOverMarkers(t *testing.T) {
	c := NewClassifier(stubDetector{code: "en", ok: true})
	// Contains the romanized marker "hai" as well, script still wins.
	assert.Equal(t, Hindi, c.Detect("बुखार hai"))
	assert.Equal(t, Hindi, c.Detect("मुझे सिरदर्द है"))
}

func TestDetectHinglishMarkers(t *testing.T) {
	c := NewClassifier(stubDetector{code: "en", ok: true})
	assert.Equal(t, Hinglish, c.Detect("Mujhe bukhar hai"))
	assert.Equal(t, Hinglish, c.Detect("KYA scheme available?"))
}

func TestDetectFallbackDetector(t *testing.T) {
	assert.Equal(t, Hindi, NewClassifier(stubDetector{code: "hi", ok: true}).Detect("some transliterated text"))
	assert.Equal(t, English, NewClassifier(stubDetector{code: "en", ok: true}).Detect("I would like to see a doctor"))
	assert.Equal(t, English, NewClassifier(stubDetector{code: "fr", ok: true}).Detect("bonjour docteur"))
}

func TestDetectFallbackFailureDefaultsToEnglish(t *testing.T) {
	c := NewClassifier(stubDetector{ok: false})
	assert.Equal(t, English, c.Detect("zzz"))
	assert.Equal(t, English, c.Detect(""))
}

func TestInstruction(t *testing.T) {
	require.Equal(t, "Reply strictly in Hindi only.", Instruction(Hindi))
	require.Equal(t, "Reply in casual Hinglish (Roman Hindi + English mix).", Instruction(Hinglish))
	require.Equal(t, "Reply in formal English, like a doctor.", Instruction(English))
	// Unknown tags get the formal default.
	require.Equal(t, "Reply in formal English, like a doctor.", Instruction(Language("xx")))
}
