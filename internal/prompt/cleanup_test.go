package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanOutputEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "horizontal rules become blank lines",
			input:    "Subject: Hello\n---\nBody:\nText",
			expected: "Subject: Hello\n\nBody:\nText",
		},
		{
			name:     "longer rules too",
			input:    "Subject: Hello\n--------\nBody",
			expected: "Subject: Hello\n\nBody",
		},
		{
			name:     "runs of blank lines collapse",
			input:    "Subject: Hello\n\n\n\nBody",
			expected: "Subject: Hello\n\nBody",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "\n\nSubject: Hello\n\n",
			expected: "Subject: Hello",
		},
		{
			name:     "clean output passes through",
			input:    "Subject: Hello\n\nBody:\nText",
			expected: "Subject: Hello\n\nBody:\nText",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanOutput(ModeEmail, tt.input))
		})
	}
}

func TestCleanGeneralOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "leading label line is stripped",
			input:    "Friendly Greeting\nHi! How can I help today?",
			expected: "Hi! How can I help today?",
		},
		{
			name:     "markdown heading variant is stripped",
			input:    "## Greeting Response\nHi! How can I help today?",
			expected: "Hi! How can I help today?",
		},
		{
			name:     "label lines in the middle are removed",
			input:    "Here is the answer.\nConclusion\nThat is all.",
			expected: "Here is the answer.\n\nThat is all.",
		},
		{
			name:     "ordinary text is untouched",
			input:    "The purpose of the meeting was unclear.",
			expected: "The purpose of the meeting was unclear.",
		},
		{
			name:     "single label-only line survives the leading strip",
			input:    "Introduction",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanOutput(ModeGeneral, tt.input))
		})
	}
}

func TestCleanGeneralOutputIdempotent(t *testing.T) {
	inputs := []string{
		"Friendly Greeting\nHi! How can I help?",
		"Purpose\nShip the release.\nConclusion\nDone.",
		"No labels here at all.\n\nJust text.",
	}

	for _, input := range inputs {
		once := CleanGeneralOutput(input)
		assert.Equal(t, once, CleanGeneralOutput(once))
	}
}

func TestCleanOutputPassThroughModes(t *testing.T) {
	raw := "# TL;DR\n---\nFriendly Greeting\n\n\n\nbody"

	// Summary and plan outputs are never rewritten.
	assert.Equal(t, raw, CleanOutput(ModeSummary, raw))
	assert.Equal(t, raw, CleanOutput(ModePlan, raw))
}
