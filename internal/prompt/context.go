package prompt

import (
	"regexp"
	"strings"
)

// Context holds structured facts extracted from inline "Label: value" lines.
// Keys are restricted to the recognized set below; everything else stays in
// the residual task text.
type Context map[string]string

// contextKeys maps a lower-cased inline label to its canonical context key.
// "to" is an alias for "recipient".
var contextKeys = map[string]string{
	"role":      "role",
	"company":   "company",
	"name":      "name",
	"recipient": "recipient",
	"to":        "recipient",
	"portfolio": "portfolio",
	"github":    "github",
	"linkedin":  "linkedin",
	"email":     "email",
}

// contextLineRe matches a short "Label: value" line. Labels are letters and
// spaces, 2-21 chars; the value is the trimmed remainder.
var contextLineRe = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z ]{1,20})\s*:\s*(.+?)\s*$`)

// ExtractInlineContext parses recognized "Label: value" lines out of raw
// input. Recognized lines are consumed; everything else is preserved in the
// residual task text in original order. Malformed input degrades to "nothing
// extracted, full text preserved" - there are no error cases.
func ExtractInlineContext(raw string) (Context, string) {
	lines := strings.Split(raw, "\n")
	ctx := Context{}
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		m := contextLineRe.FindStringSubmatch(line)
		if m == nil {
			kept = append(kept, line)
			continue
		}

		key, ok := contextKeys[strings.ToLower(strings.TrimSpace(m[1]))]
		if !ok {
			kept = append(kept, line)
			continue
		}

		value := strings.TrimSpace(m[2])
		if value == "" {
			continue
		}
		ctx[key] = value
	}

	return ctx, strings.TrimSpace(strings.Join(kept, "\n"))
}

// orPlaceholder returns the context value for key, or the literal bracket
// placeholder when the user did not supply it. The builder must never invent
// values for missing fields.
func (c Context) orPlaceholder(key, placeholder string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return placeholder
}
