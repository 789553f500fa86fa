package assess

import (
	"fmt"
	"strings"

	"github.com/khanhnv2901/iotscan/internal/report"
	"github.com/khanhnv2901/iotscan/internal/signature"
)

// riskSummary aggregates the prior phases into one closing section. The
// overall severity is the maximum catalog severity among vulnerability
// identifiers that appear in the findings, defaulting to LOW when none match.
func (a *Assessor) riskSummary(sections []report.Section) string {
	var all strings.Builder
	for _, s := range sections {
		all.WriteString(s.Body)
		all.WriteString("\n")
	}
	findings := all.String()

	overall := signature.SeverityLow
	var matched []string
	for _, id := range a.catalog.VulnerabilityIDs() {
		if !strings.Contains(findings, id) {
			continue
		}
		matched = append(matched, id)
		overall = overall.Max(a.catalog.Vulnerabilities[id].Severity)
	}

	var b strings.Builder
	if len(matched) == 0 {
		b.WriteString("No catalogued vulnerabilities matched the findings.\n")
	} else {
		b.WriteString("Matched vulnerabilities:\n")
		for _, id := range matched {
			v := a.catalog.Vulnerabilities[id]
			fmt.Fprintf(&b, "  - %s [%s, CVSS %.1f] %s. Remediation: %s\n",
				id, v.Severity, v.CVSSScore, v.Impact, v.Remediation)
		}
	}
	fmt.Fprintf(&b, "Overall risk: %s", overall)
	return b.String()
}
