package triage

import "strings"

// Keyword tiers for priority classification, scanned in order. Matching is
// a plain substring test over the case-folded concatenation of symptoms and
// model reply, so "feverish" matches "fever". Tier order is the tie-break:
// any CRITICAL hit wins regardless of other tiers.
var (
	criticalKeywords = []string{
		"chest pain", "heart attack", "stroke", "unconscious", "not breathing",
		"severe bleeding", "seizure", "snake bite", "suicide", "overdose",
		"বুকে ব্যথা", "হার্ট অ্যাটাক", "স্ট্রোক", "অজ্ঞান", "শ্বাস নিতে পারছে না",
		"প্রচণ্ড রক্তক্ষরণ", "খিঁচুনি", "সাপে কাটা", "আত্মহত্যা",
	}
	highKeywords = []string{
		"difficulty breathing", "shortness of breath", "high fever", "severe pain",
		"broken bone", "fracture", "poisoning", "dehydration", "pregnancy complication",
		"blood in stool", "blood in vomit",
		"শ্বাসকষ্ট", "তীব্র জ্বর", "তীব্র ব্যথা", "হাড় ভাঙা", "বিষক্রিয়া",
		"পানিশূন্যতা", "গর্ভাবস্থার জটিলতা", "রক্ত বমি",
	}
	mediumKeywords = []string{
		"fever", "vomiting", "diarrhea", "diarrhoea", "persistent cough", "infection",
		"rash", "migraine", "dizziness", "swelling",
		"জ্বর", "বমি", "ডায়রিয়া", "পাতলা পায়খানা", "কাশি", "সংক্রমণ",
		"ফুসকুড়ি", "মাথাব্যথা", "মাথা ঘোরা", "ফোলা",
	}
)

// Specializations is the closed referral vocabulary, matching the doctor
// directory's seed data. Extraction never yields anything outside this list.
var Specializations = []string{
	"General Medicine",
	"Pediatrics",
	"Gynecology",
	"Dermatology",
	"Cardiology",
	"Orthopedics",
	"ENT",
}

// DefaultSpecialization is the referral fallback when extraction finds no
// match or no doctors exist for the extracted specialization.
const DefaultSpecialization = "General Medicine"

// bengaliSpecializations maps the Bengali labels the persona template asks
// the model to use back to the canonical English values.
var bengaliSpecializations = map[string]string{
	"জেনারেল মেডিসিন": "General Medicine",
	"শিশুরোগ":         "Pediatrics",
	"স্ত্রীরোগ":       "Gynecology",
	"চর্মরোগ":         "Dermatology",
	"হৃদরোগ":          "Cardiology",
	"অর্থোপেডিক্স":    "Orthopedics",
	"নাক-কান-গলা":     "ENT",
}

// ClassifyPriority scans symptoms and model reply for tiered urgency
// keywords. Tiers are checked strictly in order, highest first, and the
// first tier with any hit wins; no hit in any tier means low.
func ClassifyPriority(symptoms, response string) Priority {
	text := strings.ToLower(symptoms + " " + response)
	for _, kw := range criticalKeywords {
		if strings.Contains(text, kw) {
			return PriorityCritical
		}
	}
	for _, kw := range highKeywords {
		if strings.Contains(text, kw) {
			return PriorityHigh
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(text, kw) {
			return PriorityMedium
		}
	}
	return PriorityLow
}

// ExtractSpecialization finds the first whitelist specialization mentioned
// in the response. The English list is tried first, case-folded; the
// Bengali labels are matched exactly since the script has no case. Returns
// "" when nothing matches.
func ExtractSpecialization(response string) string {
	lower := strings.ToLower(response)
	for _, spec := range Specializations {
		if strings.Contains(lower, strings.ToLower(spec)) {
			return spec
		}
	}
	for label, spec := range bengaliSpecializations {
		if strings.Contains(response, label) {
			return spec
		}
	}
	return ""
}

// ExtractFirstAid slices the paragraph that starts at the literal "first
// aid" marker, up to the next blank line. Only the English marker is
// recognized for now, even in Bengali replies. Returns "" when the marker
// is absent.
func ExtractFirstAid(response string) string {
	lower := strings.ToLower(response)
	idx := strings.Index(lower, "first aid")
	if idx < 0 {
		return ""
	}
	excerpt := response[idx:]
	if end := strings.Index(excerpt, "\n\n"); end >= 0 {
		excerpt = excerpt[:end]
	}
	return strings.TrimSpace(excerpt)
}
