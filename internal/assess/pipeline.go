package assess

import (
	"context"
	"fmt"
	"strings"

	"github.com/khanhnv2901/iotscan/internal/report"
)

// Section headers of the comprehensive scan, in phase order.
const (
	headerDiscovery     = "NETWORK DISCOVERY"
	headerServices      = "SERVICE ANALYSIS"
	headerVulnerability = "VULNERABILITY ASSESSMENT"
	headerRiskSummary   = "RISK SUMMARY"
)

// Port lists per scan intensity. Stealth scans the quick set with slower,
// low-visibility flags.
const (
	quickScanPorts = "80,443,554,8000,1883"
	deepScanPorts  = "1-1000,554,8000,8080,37777,34567,1883,8883"
)

// ComprehensiveScan runs the four ordered phases: discovery, service
// analysis, vulnerability assessment, risk summary. Phase failures become
// findings, so the report always contains all four sections.
func (a *Assessor) ComprehensiveScan(ctx context.Context, target string, opts Options) ([]report.Section, error) {
	intensity := opts.String("scan_intensity", "quick")
	checkCreds := opts.Bool("check_credentials", true)

	discovery := a.discover(ctx, target, intensity)

	sections := make([]report.Section, 0, 4)
	sections = append(sections, report.Section{
		Header: headerDiscovery,
		Body:   fmt.Sprintf("Target: %s\nScan intensity: %s\n\n%s", target, intensity, discovery),
	})
	sections = append(sections, report.Section{
		Header: headerServices,
		Body:   a.analyzeServices(discovery),
	})
	sections = append(sections, report.Section{
		Header: headerVulnerability,
		Body:   a.vulnerabilityChecks(ctx, target, checkCreds),
	})
	sections = append(sections, report.Section{
		Header: headerRiskSummary,
		Body:   a.riskSummary(sections),
	})
	return sections, nil
}

// discover invokes the port scanner once and returns its output as finding
// text, whatever the exit status.
func (a *Assessor) discover(ctx context.Context, target, intensity string) string {
	ports := quickScanPorts
	if intensity == "deep" {
		ports = deepScanPorts
	}
	args := []string{"-T4", "-sV", "-sC", "-p", ports, target}
	if intensity == "stealth" {
		args = append(args, "-T2", "-sS")
	}
	return findingText(a.runner.Run(ctx, a.scannerBin, args, a.timeout))
}

// vulnerabilityChecks runs the fixed, ordered check sequence. A skipped
// check still emits a placeholder block so the report shape stays stable.
func (a *Assessor) vulnerabilityChecks(ctx context.Context, target string, checkCreds bool) string {
	type vulnCheck struct {
		name string
		run  func() string
	}
	checks := []vulnCheck{
		{"Default Credentials", func() string {
			if !checkCreds {
				return "Skipped (check_credentials=false)"
			}
			return a.credentialSweep(ctx, target, []string{"http"}, "")
		}},
		{"Stream Security", func() string { return a.streamSecurityCheck(ctx, target) }},
		{"Web Interface", func() string { return a.webInterfaceCheck(ctx, target) }},
		{"Firmware Analysis", func() string { return a.firmwareCheck(ctx, target, "") }},
	}

	var b strings.Builder
	for i, c := range checks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.name)
		b.WriteString(":\n")
		b.WriteString(indent(c.run(), "  "))
		b.WriteString("\n")
	}
	return b.String()
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
