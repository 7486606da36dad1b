package triage

import (
	"context"
	"strings"
	"time"

	"wecare/internal/language"
	"wecare/internal/ollama"
)

// Generator is the slice of the model gateway the post-processor needs.
// Declared here so tests can substitute a fake.
type Generator interface {
	Generate(ctx context.Context, req ollama.GenerateRequest) (string, error)
}

const (
	// secondaryCallTimeout bounds the rewrite and summary calls. Failures
	// of either degrade to a local fallback, never to a failed request.
	secondaryCallTimeout = 60 * time.Second

	summaryMaxLen      = 500
	summaryFallbackLen = 200
	ellipsis           = "..."
)

// summaryTemperature keeps the compression call deterministic-leaning.
var summaryTemperature = 0.1

// EnforceLanguage checks the script composition of text against the
// expected language and, on a mismatch, issues exactly one rewrite call.
// The returned bool reports whether a rewrite was actually applied; a
// failed or empty rewrite keeps the original text untouched.
func EnforceLanguage(ctx context.Context, gen Generator, lang language.Language, text string) (string, bool) {
	ratio := language.BengaliRatio(text)
	mismatch := (lang == language.Bengali && ratio < 0.2) ||
		(lang == language.English && ratio >= 0.2)
	if !mismatch {
		return text, false
	}

	instruction := rewriteInstructionEnglish
	if lang == language.Bengali {
		instruction = rewriteInstructionBengali
	}

	callCtx, cancel := context.WithTimeout(ctx, secondaryCallTimeout)
	defer cancel()

	rewritten, err := gen.Generate(callCtx, ollama.GenerateRequest{Prompt: instruction + text})
	if err != nil || strings.TrimSpace(rewritten) == "" {
		return text, false
	}
	return rewritten, true
}

// Summarize compresses the full response into the 2-3 sentence form that
// gets persisted. Any model failure, or a blank reply, falls back to the
// first 200 characters of the response plus an ellipsis; the returned bool
// reports whether the fallback path was taken. Model output is hard-capped
// at 500 characters.
func Summarize(ctx context.Context, gen Generator, lang language.Language, response string) (string, bool) {
	instruction := summaryInstructionEnglish
	if lang == language.Bengali {
		instruction = summaryInstructionBengali
	}

	callCtx, cancel := context.WithTimeout(ctx, secondaryCallTimeout)
	defer cancel()

	summary, err := gen.Generate(callCtx, ollama.GenerateRequest{
		Prompt:      instruction + response,
		Temperature: &summaryTemperature,
	})
	if err != nil || strings.TrimSpace(summary) == "" {
		return truncate(response, summaryFallbackLen) + ellipsis, true
	}

	summary = strings.TrimSpace(summary)
	if len([]rune(summary)) > summaryMaxLen {
		summary = truncate(summary, summaryMaxLen-len(ellipsis)) + ellipsis
	}
	return summary, false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
