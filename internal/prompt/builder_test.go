package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamps(t *testing.T) {
	tests := []struct {
		name           string
		mode           string
		tone           string
		length         string
		expectedMode   Mode
		expectedTone   Tone
		expectedLength Length
	}{
		{"valid values pass through", "email", "friendly", "long", ModeEmail, ToneFriendly, LengthLong},
		{"unknown values fall back", "poem", "sarcastic", "huge", ModeGeneral, ToneProfessional, LengthMedium},
		{"empty values fall back", "", "", "", ModeGeneral, ToneProfessional, LengthMedium},
		{"case matters", "Email", "URGENT", "Short", ModeGeneral, ToneProfessional, LengthMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMode, ClampMode(tt.mode))
			assert.Equal(t, tt.expectedTone, ClampTone(tt.tone))
			assert.Equal(t, tt.expectedLength, ClampLength(tt.length))
		})
	}
}

func TestLengthMaxTokens(t *testing.T) {
	assert.Equal(t, 420, LengthShort.MaxTokens())
	assert.Equal(t, 750, LengthMedium.MaxTokens())
	assert.Equal(t, 1100, LengthLong.MaxTokens())
}

func TestSystemText(t *testing.T) {
	assert.Contains(t, SystemText(ModeEmail), "outreach emails")
	assert.Contains(t, SystemText(ModeGeneral), "DINOVA")
	assert.Contains(t, SystemText(ModeGeneral), "Respond naturally")
	// Summary and plan share the structured-assistant instruction.
	assert.Equal(t, SystemText(ModeSummary), SystemText(ModePlan))
}

func TestBuildEmailUsesExtractedContext(t *testing.T) {
	b := NewBuilder()

	input := "Role: Frontend Developer\nCompany: Acme\nName: Jane Doe\nTo: Hiring Team\nApply for the posted role"
	rendered := b.Build(ModeEmail, ToneProfessional, LengthMedium, input)

	assert.Contains(t, rendered, "- Recipient: Hiring Team")
	assert.Contains(t, rendered, "- Role: Frontend Developer")
	assert.Contains(t, rendered, "- Company: Acme")
	assert.Contains(t, rendered, "Jane Doe")
	assert.Contains(t, rendered, "User task:\nApply for the posted role")
	assert.Contains(t, rendered, "professional tone")
	assert.Contains(t, rendered, "160-220 words")
	// Consumed context lines must not leak back into the task text.
	assert.NotContains(t, rendered, "Role: Frontend Developer\nCompany")
}

func TestBuildEmailKeepsPlaceholdersForMissingContext(t *testing.T) {
	b := NewBuilder()

	rendered := b.Build(ModeEmail, ToneUrgent, LengthShort, "Ask about the open role")

	assert.Contains(t, rendered, "[Name/Team]")
	assert.Contains(t, rendered, "[Role]")
	assert.Contains(t, rendered, "[Company]")
	assert.Contains(t, rendered, "[Your Name]")
	assert.Contains(t, rendered, "[Portfolio Link]")
	assert.Contains(t, rendered, "[Email] | [LinkedIn]")
	assert.Contains(t, rendered, "urgent tone")
	assert.Contains(t, rendered, "120-160 words")
	assert.Contains(t, rendered, "EXACTLY 2 proof bullets")
}

func TestBuildSummaryStructure(t *testing.T) {
	b := NewBuilder()

	rendered := b.Build(ModeSummary, ToneProfessional, LengthLong, "Meeting notes from sprint review")

	assert.Contains(t, rendered, "# TL;DR")
	assert.Contains(t, rendered, "# Key Points")
	assert.Contains(t, rendered, "# Next Steps")
	assert.Contains(t, rendered, "220-300 words")
}

func TestBuildPlanStructure(t *testing.T) {
	b := NewBuilder()

	rendered := b.Build(ModePlan, ToneProfessional, LengthMedium, "Learn Go in 4 weeks, 2 hours/day")

	assert.Contains(t, rendered, "# Goal")
	assert.Contains(t, rendered, "# Assumptions (only if needed)")
	assert.Contains(t, rendered, "# Steps")
	assert.Contains(t, rendered, "# Timeline")
	assert.Contains(t, rendered, "# Risks & Mitigations")
	assert.Contains(t, rendered, "# Success Metrics")
	assert.Contains(t, rendered, "compute the hours/week")
}

func TestBuildGeneralGreeting(t *testing.T) {
	b := NewBuilder()

	rendered := b.Build(ModeGeneral, ToneProfessional, LengthMedium, "hi there")

	assert.Contains(t, rendered, "User said: hi there")
	assert.Contains(t, rendered, "1-2 sentences")
	assert.Contains(t, rendered, "follow-up question")
	assert.NotContains(t, rendered, "words")
}

func TestBuildGeneralMessage(t *testing.T) {
	b := NewBuilder()

	rendered := b.Build(ModeGeneral, ToneProfessional, LengthLong, "how do I deploy a React app to Vercel?")

	assert.Contains(t, rendered, "User message:\nhow do I deploy a React app to Vercel?")
	assert.Contains(t, rendered, "helpful chat assistant")
	assert.Contains(t, rendered, "prefer dashboard steps")
	// General chat carries no word-range directive regardless of length.
	assert.NotContains(t, rendered, "220-300 words")
}

func TestBuildFallsBackToRawInputWhenAllLinesConsumed(t *testing.T) {
	b := NewBuilder()

	// Every line is a recognized context line, so the residual task is empty
	// and the raw input is used as the task instead.
	input := "Name: Jane\nCompany: Acme"
	rendered := b.Build(ModeEmail, ToneProfessional, LengthMedium, input)

	assert.Contains(t, rendered, "User task:\nName: Jane\nCompany: Acme")
	assert.Contains(t, rendered, "- Company: Acme")
}
