package triage

import (
	"fmt"
	"strings"

	"wecare/internal/language"
)

// conversationWindow bounds how many prior consultations are rendered into
// the prompt.
const conversationWindow = 5

// BuildPrompt assembles the full instruction text for one generation call:
// persona template for the target language, then the context blocks in fixed
// order (medical history digest, prior-consultation digest, current turn).
// Empty blocks contribute nothing. previous is expected most-recent-first,
// as the repository returns it, and is rendered oldest-first.
func BuildPrompt(lang language.Language, history []HistoryEntry, previous []Consultation, query string, hasImage bool) string {
	blocks := []string{persona(lang)}

	if digest := historyDigest(lang, history); digest != "" {
		blocks = append(blocks, digest)
	}
	if digest := conversationDigest(lang, previous); digest != "" {
		blocks = append(blocks, digest)
	}

	query = strings.TrimSpace(query)
	switch {
	case query != "":
		blocks = append(blocks, currentTurnLabel(lang)+query)
	case hasImage:
		blocks = append(blocks, imageOnlyPlaceholder(lang))
	}

	return strings.Join(blocks, "\n\n")
}

func persona(lang language.Language) string {
	if lang == language.Bengali {
		return personaBengali
	}
	return personaEnglish
}

func imageOnlyPlaceholder(lang language.Language) string {
	if lang == language.Bengali {
		return imageOnlyPlaceholderBengali
	}
	return imageOnlyPlaceholderEnglish
}

func currentTurnLabel(lang language.Language) string {
	if lang == language.Bengali {
		return "রোগীর বর্তমান প্রশ্ন: "
	}
	return "Patient's current question: "
}

func historyDigest(lang language.Language, history []HistoryEntry) string {
	if len(history) == 0 {
		return ""
	}
	header := "Patient's known medical history:"
	chronic := "chronic"
	if lang == language.Bengali {
		header = "রোগীর পরিচিত চিকিৎসা ইতিহাস:"
		chronic = "দীর্ঘস্থায়ী"
	}
	var b strings.Builder
	b.WriteString(header)
	for _, h := range history {
		b.WriteString("\n- ")
		b.WriteString(h.Condition)
		if h.IsChronic {
			fmt.Fprintf(&b, " (%s)", chronic)
		}
		if h.Notes != "" {
			b.WriteString(": ")
			b.WriteString(h.Notes)
		}
	}
	return b.String()
}

func conversationDigest(lang language.Language, previous []Consultation) string {
	if len(previous) == 0 {
		return ""
	}
	if len(previous) > conversationWindow {
		previous = previous[:conversationWindow]
	}

	header := "Recent consultations, oldest first:"
	patientLabel, assistantLabel := "Patient", "Assistant"
	if lang == language.Bengali {
		header = "সাম্প্রতিক পরামর্শসমূহ, পুরোনো থেকে নতুন:"
		patientLabel, assistantLabel = "রোগী", "সহায়ক"
	}

	var b strings.Builder
	b.WriteString(header)
	// previous arrives newest-first; walk backwards to render oldest-first.
	for i := len(previous) - 1; i >= 0; i-- {
		c := previous[i]
		fmt.Fprintf(&b, "\n%s: %s", patientLabel, strings.TrimSpace(c.Symptoms))
		if c.Response != "" {
			fmt.Fprintf(&b, "\n%s: %s", assistantLabel, strings.TrimSpace(c.Response))
		}
	}
	return b.String()
}
