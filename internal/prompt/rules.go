package prompt

import (
	"regexp"
	"strings"
)

// The greeting detector and the banned-heading set are small literal rule
// tables tuned by trial. They are kept as data so membership can be tested
// and extended without touching the builder or cleanup code.

type matchKind int

const (
	matchExact matchKind = iota
	matchPrefix
	matchContains
)

type textRule struct {
	kind    matchKind
	pattern string
}

// greetingRules is evaluated in order against the trimmed, lower-cased task
// text. Any hit marks the input as a greeting.
var greetingRules = []textRule{
	{matchExact, "hi"},
	{matchExact, "hello"},
	{matchExact, "hey"},
	{matchExact, "yo"},
	{matchPrefix, "hi "},
	{matchPrefix, "hello "},
	{matchPrefix, "hey "},
	{matchPrefix, "i'm "},
	{matchPrefix, "im "},
	{matchPrefix, "my name is "},
	{matchContains, "good morning"},
	{matchContains, "good afternoon"},
	{matchContains, "good evening"},
}

// maxGreetingLen caps greeting detection; anything longer is a real message.
const maxGreetingLen = 60

// IsGreeting reports whether the text is small talk that should get a short
// conversational reply instead of a structured one.
func IsGreeting(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" || len(t) > maxGreetingLen {
		return false
	}

	for _, rule := range greetingRules {
		switch rule.kind {
		case matchExact:
			if t == rule.pattern {
				return true
			}
		case matchPrefix:
			if strings.HasPrefix(t, rule.pattern) {
				return true
			}
		case matchContains:
			if strings.Contains(t, rule.pattern) {
				return true
			}
		}
	}
	return false
}

// bannedHeadings are label lines the model sometimes prepends to plain chat
// replies ("Friendly Greeting", "Conclusion", ...). Cleanup strips them.
var bannedHeadings = []string{
	"friendly greeting",
	"greeting response",
	"introduction",
	"purpose",
	"actionable items",
	"conclusion",
}

var bannedHeadingRe = regexp.MustCompile(
	`(?im)^\s*(#+\s*)?(` + strings.Join(bannedHeadings, "|") + `)\s*$`,
)
