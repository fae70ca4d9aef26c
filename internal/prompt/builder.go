package prompt

import (
	"fmt"
	"strings"
)

// Mode selects which instruction skeleton is rendered.
type Mode string

const (
	ModeEmail   Mode = "email"
	ModeSummary Mode = "summary"
	ModePlan    Mode = "plan"
	ModeGeneral Mode = "general"
)

// Tone applies to email mode only.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneUrgent       Tone = "urgent"
)

// Length selects the output length tier.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// ClampMode maps an arbitrary value to a valid mode, defaulting to general.
// Clamps are total: unknown values are never rejected.
func ClampMode(s string) Mode {
	switch Mode(s) {
	case ModeEmail, ModeSummary, ModePlan, ModeGeneral:
		return Mode(s)
	}
	return ModeGeneral
}

// ClampTone maps an arbitrary value to a valid tone, defaulting to professional.
func ClampTone(s string) Tone {
	switch Tone(s) {
	case ToneProfessional, ToneFriendly, ToneUrgent:
		return Tone(s)
	}
	return ToneProfessional
}

// ClampLength maps an arbitrary value to a valid length, defaulting to medium.
func ClampLength(s string) Length {
	switch Length(s) {
	case LengthShort, LengthMedium, LengthLong:
		return Length(s)
	}
	return LengthMedium
}

// MaxTokens returns the generation token budget for the length tier.
func (l Length) MaxTokens() int {
	switch l {
	case LengthShort:
		return 420
	case LengthLong:
		return 1100
	default:
		return 750
	}
}

// wordRange returns the word-count guidance interpolated into the prompt.
func (l Length) wordRange() string {
	switch l {
	case LengthShort:
		return "120-160 words"
	case LengthLong:
		return "220-300 words"
	default:
		return "160-220 words"
	}
}

// SystemText returns the system-role instruction for the mode.
func SystemText(mode Mode) string {
	switch mode {
	case ModeEmail:
		return "You are a helpful assistant that writes concise, human-sounding professional outreach emails. Follow constraints exactly."
	case ModeGeneral:
		return "You are DINOVA, a helpful chat assistant. Respond naturally. Do not add headings/titles unless the user requests structure."
	default:
		return "You are DINOVA, a concise professional assistant. Return Markdown. Follow the requested structure exactly. Avoid filler."
	}
}

// Builder renders mode-specific instruction prompts. It is stateless; Build
// is a pure function of its arguments.
type Builder struct{}

// NewBuilder creates a new prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build extracts inline context from the input and renders the instruction
// for the given mode. Mode/tone/length must already be clamped upstream; the
// builder has no error conditions.
func (b *Builder) Build(mode Mode, tone Tone, length Length, input string) string {
	ctx, task := ExtractInlineContext(input)
	if task == "" {
		task = strings.TrimSpace(input)
	}

	base := fmt.Sprintf("User task:\n%s\n\nOutput length: %s (%s).", task, length, length.wordRange())

	switch mode {
	case ModeEmail:
		return b.buildEmail(base, tone, ctx)
	case ModeSummary:
		return b.buildSummary(base)
	case ModePlan:
		return b.buildPlan(base)
	default:
		return b.buildGeneral(task)
	}
}

func (b *Builder) buildEmail(base string, tone Tone, ctx Context) string {
	recipient := ctx.orPlaceholder("recipient", "[Name/Team]")
	role := ctx.orPlaceholder("role", "[Role]")
	company := ctx.orPlaceholder("company", "[Company]")
	name := ctx.orPlaceholder("name", "[Your Name]")
	portfolio := ctx.orPlaceholder("portfolio", "[Portfolio Link]")
	github := ctx.orPlaceholder("github", "[GitHub Link]")
	linkedin := ctx.orPlaceholder("linkedin", "[LinkedIn]")
	email := ctx.orPlaceholder("email", "[Email]")

	return strings.Join([]string{
		base,
		fmt.Sprintf("Write a concise outreach/application email in a %s tone.", tone),
		"",
		"Context:",
		"- Recipient: " + recipient,
		"- Role: " + role,
		"- Company: " + company,
		"- My stack: React, JavaScript, API integration, UI/UX implementation",
		fmt.Sprintf("- Links: Portfolio %s | GitHub %s", portfolio, github),
		"",
		"Requirements:",
		"- No fluff lines like 'I hope this message finds you well' unless the user explicitly requests a formal tone.",
		"- Avoid vague claims like 'throughout my career' or 'positive feedback from users'.",
		"- Use confident, concise tone. No corporate cliches.",
		"- Do not invent names, titles, companies, achievements, or links. If missing, keep bracket placeholders like [Company], [Role], [Portfolio Link].",
		"- In the Body section, include EXACTLY 2 proof bullets and they MUST start with '- ' (dash + space).",
		"- Must include:",
		"  1) subject line",
		"  2) 2-3 sentence intro (who I am + why I'm reaching out)",
		"  3) 2 bullets of proof (projects/skills); use bracket placeholders if specifics are not provided",
		"  4) clear CTA (15-min call / next steps)",
		"  5) signature",
		"",
		"Return output as EXACTLY:",
		"Subject: ...",
		"Body:",
		"...",
		"",
		"Signature format:",
		"Best,",
		name,
		email + " | " + linkedin,
	}, "\n")
}

func (b *Builder) buildSummary(base string) string {
	return strings.Join([]string{
		base,
		"Create an executive summary.",
		"Use this exact structure:",
		"# TL;DR",
		"# Key Points",
		"Use bullets.",
		"# Next Steps",
		"Use bullets.",
	}, "\n")
}

func (b *Builder) buildPlan(base string) string {
	return strings.Join([]string{
		base,
		"Create a practical plan that someone can follow.",
		"If the user provides time availability (hours/day, hours/week, weekdays/weekends), compute the hours/week and allocate work that matches that constraint.",
		"If the user provides a deadline date or number of days/weeks, map the timeline to that horizon (avoid generic Day 1-5 unless the user asked for it).",
		"If the user asks for deployment steps, prefer dashboard steps and do NOT invent CLI commands unless the user explicitly requested CLI.",
		"Use this exact structure:",
		"# Goal",
		"# Assumptions (only if needed)",
		"# Steps",
		"Use a numbered list.",
		"# Timeline",
		"# Risks & Mitigations",
		"# Success Metrics",
	}, "\n")
}

// buildGeneral defaults to natural chat unless the user explicitly wants
// structure. General replies carry no word-range directive.
func (b *Builder) buildGeneral(task string) string {
	if IsGreeting(task) {
		return strings.Join([]string{
			"User said: " + task,
			"Reply naturally in 1-2 sentences as plain text.",
			"No headings, no titles, no markdown, no meta sections like Purpose/Conclusion.",
			"Start directly with the response sentence (do not add a label line like 'Friendly Greeting').",
			"Then ask one short follow-up question to move the conversation forward.",
		}, "\n")
	}

	return strings.Join([]string{
		"User message:\n" + task,
		"Reply like a helpful chat assistant. Keep it direct and human.",
		"Only use headings/bullets if they clearly help the user (for example: plans, checklists, steps).",
		"Never add meta sections like 'Purpose', 'Actionable Items', or 'Conclusion' unless the user asked for that format.",
		"If the user asks for deployment steps (e.g., Vercel/Render), prefer dashboard steps and do NOT invent CLI commands unless the user explicitly requested CLI.",
	}, "\n")
}
