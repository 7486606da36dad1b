package triage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wecare/internal/language"
)

func TestBuildPromptOrdersBlocks(t *testing.T) {
	history := []HistoryEntry{{Condition: "Asthma", IsChronic: true, Notes: "uses inhaler"}}
	previous := []Consultation{
		{Symptoms: "cough yesterday", Response: "Likely a cold."},
		{Symptoms: "rash last week", Response: "Contact dermatitis."},
	}

	prompt := BuildPrompt(language.English, history, previous, "I have a sore throat", false)

	persona := strings.Index(prompt, "You are WeCare")
	hist := strings.Index(prompt, "Asthma")
	conv := strings.Index(prompt, "cough yesterday")
	current := strings.Index(prompt, "I have a sore throat")
	require.True(t, persona >= 0 && hist > 0 && conv > 0 && current > 0)
	assert.Less(t, persona, hist)
	assert.Less(t, hist, conv)
	assert.Less(t, conv, current)
}

func TestBuildPromptRendersOldestFirst(t *testing.T) {
	// Repository order is newest first; the prompt shows oldest first.
	previous := []Consultation{
		{Symptoms: "newest complaint"},
		{Symptoms: "oldest complaint"},
	}
	prompt := BuildPrompt(language.English, nil, previous, "today's question", false)

	assert.Less(t, strings.Index(prompt, "oldest complaint"), strings.Index(prompt, "newest complaint"))
}

func TestBuildPromptBoundsConversationWindow(t *testing.T) {
	var previous []Consultation
	for _, s := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		previous = append(previous, Consultation{Symptoms: "complaint " + s})
	}

	prompt := BuildPrompt(language.English, nil, previous, "q", false)

	assert.Contains(t, prompt, "complaint one")
	assert.Contains(t, prompt, "complaint five")
	assert.NotContains(t, prompt, "complaint six")
	assert.NotContains(t, prompt, "complaint seven")
}

func TestBuildPromptEmptyBlocksContributeNothing(t *testing.T) {
	prompt := BuildPrompt(language.English, nil, nil, "only a question", false)

	assert.NotContains(t, prompt, "medical history")
	assert.NotContains(t, prompt, "Recent consultations")
	assert.NotContains(t, prompt, "\n\n\n", "no stray separators from empty blocks")
	assert.True(t, strings.HasSuffix(prompt, "only a question"))
}

func TestBuildPromptImageOnlyPlaceholder(t *testing.T) {
	prompt := BuildPrompt(language.Bengali, nil, nil, "", true)
	assert.Contains(t, prompt, imageOnlyPlaceholderBengali)

	prompt = BuildPrompt(language.English, nil, nil, "", true)
	assert.Contains(t, prompt, imageOnlyPlaceholderEnglish)
}

func TestBuildPromptPersonaPerLanguage(t *testing.T) {
	en := BuildPrompt(language.English, nil, nil, "q", false)
	bn := BuildPrompt(language.Bengali, nil, nil, "প্রশ্ন", false)

	assert.Contains(t, en, "Respond entirely in English")
	assert.Contains(t, bn, "সম্পূর্ণ উত্তর বাংলায় দিন")

	// The referral section must name the closed vocabulary so extraction
	// can match the reply.
	for _, spec := range Specializations {
		assert.Contains(t, en, spec)
	}
	for label := range bengaliSpecializations {
		assert.Contains(t, bn, label)
	}

	assert.Contains(t, en, "under 300 words")
}
