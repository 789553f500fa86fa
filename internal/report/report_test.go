package report

import (
	"strings"
	"testing"
)

func TestFormatDeterministic(t *testing.T) {
	sections := []Section{
		{Header: "NETWORK DISCOVERY", Body: "80/tcp open http"},
		{Header: "RISK SUMMARY", Body: "Overall risk: LOW"},
	}

	first := Format("NOTICE", sections)
	second := Format("NOTICE", sections)
	if first != second {
		t.Fatal("identical inputs must produce byte-identical reports")
	}
}

func TestFormatNoticeExactlyOnceAtTop(t *testing.T) {
	sections := []Section{
		{Header: "A", Body: "first"},
		{Header: "B", Body: "second"},
	}
	out := Format("LEGAL WARNING: test notice", sections)

	if !strings.HasPrefix(out, "LEGAL WARNING: test notice") {
		t.Fatalf("report must start with the notice, got %q", out[:40])
	}
	if strings.Count(out, "LEGAL WARNING: test notice") != 1 {
		t.Fatal("notice must appear exactly once")
	}
}

func TestFormatPreservesSectionOrder(t *testing.T) {
	sections := []Section{
		{Header: "NETWORK DISCOVERY", Body: "d"},
		{Header: "SERVICE ANALYSIS", Body: "s"},
		{Header: "VULNERABILITY ASSESSMENT", Body: "v"},
		{Header: "RISK SUMMARY", Body: "r"},
	}
	out := Format("n", sections)

	last := -1
	for _, header := range []string{"NETWORK DISCOVERY", "SERVICE ANALYSIS", "VULNERABILITY ASSESSMENT", "RISK SUMMARY"} {
		idx := strings.Index(out, header)
		if idx < 0 {
			t.Fatalf("missing section %q", header)
		}
		if idx < last {
			t.Fatalf("section %q out of order", header)
		}
		last = idx
	}
}

func TestFormatEmptyBodyPlaceholder(t *testing.T) {
	out := Format("n", []Section{{Header: "EMPTY", Body: ""}})
	if !strings.Contains(out, "(no output)") {
		t.Fatal("empty section bodies need a placeholder to keep report shape stable")
	}
}
