package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name     string
		symptoms string
		response string
		want     Priority
	}{
		{name: "no keywords", symptoms: "mild itching on my arm", response: "Sounds harmless.", want: PriorityLow},
		{name: "medium keyword in symptoms", symptoms: "I have had fever for two days", response: "", want: PriorityMedium},
		{name: "high keyword in response", symptoms: "my leg hurts", response: "This could be a fracture, see a doctor.", want: PriorityHigh},
		{name: "critical keyword in symptoms", symptoms: "sudden chest pain while walking", response: "", want: PriorityCritical},
		{name: "critical beats medium", symptoms: "chest pain and fever", response: "", want: PriorityCritical},
		{name: "critical beats high and medium", symptoms: "fever, difficulty breathing and chest pain", response: "", want: PriorityCritical},
		{name: "case folded", symptoms: "CHEST PAIN", response: "", want: PriorityCritical},
		{name: "substring match", symptoms: "I feel feverish", response: "", want: PriorityMedium},
		{name: "bengali critical keyword", symptoms: "হঠাৎ বুকে ব্যথা", response: "", want: PriorityCritical},
		{name: "bengali medium keyword", symptoms: "দুই দিন ধরে জ্বর", response: "", want: PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPriority(tt.symptoms, tt.response))
		})
	}
}

func TestExtractSpecialization(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{name: "english exact", response: "You should consult Cardiology as soon as possible.", want: "Cardiology"},
		{name: "english case folded", response: "please visit a PEDIATRICS department", want: "Pediatrics"},
		{name: "bengali label", response: "আপনার হৃদরোগ বিশেষজ্ঞ দেখানো উচিত।", want: "Cardiology"},
		{name: "no match", response: "Drink lots of water and rest.", want: ""},
		{name: "near miss is not a match", response: "see a cardiologist's assistant at the neurology desk", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSpecialization(tt.response)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.Contains(t, Specializations, got)
			}
		})
	}
}

// Whatever the input, extraction only ever yields whitelist members.
func TestExtractSpecializationWhitelistOnly(t *testing.T) {
	inputs := []string{
		"random text", "cardio", "dermato", "ENTirely unrelated",
		"General Medicine and Cardiology both apply",
	}
	for _, in := range inputs {
		got := ExtractSpecialization(in)
		if got != "" {
			assert.Contains(t, Specializations, got)
		}
	}
}

func TestExtractFirstAid(t *testing.T) {
	response := "Quick Assessment: likely a sprain.\n\n" +
		"Immediate First Aid: rest the ankle, apply ice for 20 minutes,\nand keep it elevated.\n\n" +
		"Referral Guidance: Orthopedics."

	got := ExtractFirstAid(response)
	assert.Equal(t, "First Aid: rest the ankle, apply ice for 20 minutes,\nand keep it elevated.", got)
}

func TestExtractFirstAidNoMarker(t *testing.T) {
	assert.Equal(t, "", ExtractFirstAid("Rest and drink fluids."))
}

func TestExtractFirstAidMarkerAtEnd(t *testing.T) {
	// No trailing paragraph break: the excerpt runs to the end of the text.
	got := ExtractFirstAid("Apply first aid: press a clean cloth on the wound.")
	assert.Equal(t, "first aid: press a clean cloth on the wound.", got)
}
