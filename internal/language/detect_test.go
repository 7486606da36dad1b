package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{name: "plain english", text: "I have a fever and headache", want: English},
		{name: "plain bengali", text: "আমার জ্বর হয়েছে", want: Bengali},
		{name: "empty", text: "", want: English},
		{name: "whitespace only", text: "   \n\t", want: English},
		{name: "digits and punctuation", text: "123 !?", want: English},
		{name: "two bengali chars below threshold", text: "আম ok fine then", want: English},
		{name: "three bengali chars meet threshold", text: "আমি ok", want: Bengali},
		{name: "bengali minority loses", text: "আমার fever has been high since yesterday", want: English},
		{name: "bengali majority wins", text: "আমার অনেক জ্বর fever", want: Bengali},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestBengaliRatio(t *testing.T) {
	assert.Equal(t, 0.0, BengaliRatio(""))
	assert.Equal(t, 0.0, BengaliRatio("1234 !?"))
	assert.Equal(t, 0.0, BengaliRatio("only english text"))
	assert.Equal(t, 1.0, BengaliRatio("জ্বর"))

	// Mixed text lands strictly between the extremes.
	ratio := BengaliRatio("জ্বর fever")
	assert.Greater(t, ratio, 0.0)
	assert.Less(t, ratio, 1.0)
}
