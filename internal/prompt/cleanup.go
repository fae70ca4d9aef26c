package prompt

import (
	"regexp"
	"strings"
)

var (
	hrSeparatorRe   = regexp.MustCompile(`\n-{3,}\n`)
	excessNewlineRe = regexp.MustCompile(`\n{3,}`)
)

// CleanOutput applies mode-conditional cleanup to model output. Summary and
// plan outputs pass through unmodified.
func CleanOutput(mode Mode, output string) string {
	switch mode {
	case ModeEmail:
		return cleanEmailOutput(output)
	case ModeGeneral:
		return CleanGeneralOutput(output)
	default:
		return output
	}
}

// cleanEmailOutput collapses horizontal-rule separators and runs of blank
// lines the model sometimes inserts between email sections.
func cleanEmailOutput(output string) string {
	s := hrSeparatorRe.ReplaceAllString(output, "\n\n")
	s = excessNewlineRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// CleanGeneralOutput strips "template-y" label headings from chat replies:
// a leading banned-heading line, then any standalone banned-heading line
// anywhere in the text. Applying it twice yields the same result as once.
func CleanGeneralOutput(output string) string {
	s := strings.TrimSpace(output)

	lines := strings.Split(s, "\n")
	if len(lines) >= 2 && bannedHeadingRe.MatchString(strings.TrimSpace(lines[0])) {
		s = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	s = bannedHeadingRe.ReplaceAllString(s, "")
	s = excessNewlineRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
