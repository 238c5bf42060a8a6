package core

// prompts.go keeps the generation prompt templates and the canned replies
// in one place so wording can be tuned without touching the dialogue logic.

import "arogyam-chatbot/internal/lang"

// Disclaimer is appended to every generated reply, including the
// generation-failure placeholder.
const Disclaimer = "\n\nThis is not a substitute for professional medical advice."

// schemePrompt embeds the user message, the retrieved scheme text and the
// output-language instruction.
const schemePrompt = `You are a government health scheme assistant.
User asked: %q
Scheme info: %q

Task: Respond in the same language as the user.
%s
- Explain the scheme briefly (2 lines).
- Mention eligibility conditions (age, income, rural/urban, special groups).
- Mention main benefits (insurance cover, free medicines, cashless treatment).
- Keep tone supportive and user-friendly.`

// symptomPrompt opens the clarification dialogue; it must end by asking for
// the duration so the state machine's first turn lines up with the reply.
const symptomPrompt = `You are a friendly medical assistant.
User said: %q
Retrieved medical info: %q

Task: Respond naturally in the same language as the user.
%s
- Keep it short and caring.
- End by asking: "Ye problem kab se hai? (e.g. '3 din se')"`

// summaryPrompt closes the dialogue with the collected fields.
const summaryPrompt = `You are a friendly medical assistant.
User problem: %q
Duration: %q
Severity: %q
Extra symptoms: %q

Task: Respond in the same language as the user.
%s
- Summarize user case briefly.
- Suggest possible cause.
- Suggest suitable specialist.
- Provide safe advice (home remedies + when to consult doctor).
- Keep reply short (3-4 lines), empathetic and clear.`

// fallbackPrompt handles free text that matched no intent and no fact.
const fallbackPrompt = `You are a medical assistant. User said: %q. %s Give a helpful, safe, friendly reply.`

var greetings = map[lang.Language]string{
	lang.Hindi:    "नमस्ते 👋, मैं आरोग्यम हूँ। आप मुझे अपने लक्षण बता सकते हैं, या स्वास्थ्य योजनाओं के बारे में पूछ सकते हैं।",
	lang.Hinglish: "Hello 👋, I'm Arogyam. Aap mujhe apne symptoms bata sakte ho, ya phir health schemes ke baare mein puch sakte ho.",
	lang.English:  "Hello 👋, I'm Arogyam. You can tell me your symptoms, or ask about government health schemes.",
}

var schemeNotFound = map[lang.Language]string{
	lang.Hindi:    "मुझे इस योजना की जानकारी नहीं मिली।",
	lang.Hinglish: "Mujhe is scheme ki info nahi mili.",
	lang.English:  "I couldn't find information about that scheme.",
}

var symptomNotFound = map[lang.Language]string{
	lang.Hindi:    "मुझे इस लक्षण की जानकारी नहीं मिली।",
	lang.Hinglish: "Mujhe is symptom ki info nahi mili.",
	lang.English:  "I couldn't find information about that symptom.",
}

var askSeverity = map[lang.Language]string{
	lang.Hindi:    "तकलीफ़ कितनी गंभीर है? (mild / moderate / severe)",
	lang.Hinglish: "Severity kaisi hai? (mild / moderate / severe)",
	lang.English:  "How severe is it? (mild / moderate / severe)",
}

var askExtraSymptoms = map[lang.Language]string{
	lang.Hindi:    "क्या और कोई लक्षण हैं? (जैसे खांसी, बदन दर्द, जी मिचलाना?)",
	lang.Hinglish: "Aur koi symptoms hai? (jaise cough, body pain, nausea?)",
	lang.English:  "Any other symptoms? (e.g. cough, body pain, nausea?)",
}

var didNotUnderstand = map[lang.Language]string{
	lang.Hindi:    "मुझे समझ नहीं आया।",
	lang.Hinglish: "Mujhe samajh nahi aaya.",
	lang.English:  "Sorry, I didn't understand that.",
}

var generationUnavailable = map[lang.Language]string{
	lang.Hindi:    "माफ़ कीजिए, अभी जवाब तैयार नहीं हो पाया। कृपया थोड़ी देर बाद फिर कोशिश करें।",
	lang.Hinglish: "Sorry, abhi reply generate nahi ho paya. Thodi der baad try karein.",
	lang.English:  "Sorry, I couldn't prepare a reply right now. Please try again in a moment.",
}

func canned(m map[lang.Language]string, l lang.Language) string {
	if s, ok := m[l]; ok {
		return s
	}
	return m[lang.English]
}
