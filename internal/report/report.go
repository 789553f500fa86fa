// Package report assembles phase findings into one deterministic text report.
package report

import (
	"strings"
)

const sectionRule = "------------------------------------------------------------"

// Section is one ordered block of a report: a header plus finding text.
type Section struct {
	Header string
	Body   string
}

// Format concatenates sections in order, each under its header, with the
// disclosure notice exactly once at the top. Identical inputs always yield a
// byte-identical report.
func Format(notice string, sections []Section) string {
	var b strings.Builder
	if notice != "" {
		b.WriteString(strings.TrimSpace(notice))
		b.WriteString("\n")
	}
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(s.Header)
		b.WriteString("\n")
		b.WriteString(sectionRule)
		b.WriteString("\n")
		body := strings.TrimRight(s.Body, "\n")
		if body == "" {
			body = "(no output)"
		}
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}
