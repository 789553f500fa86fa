package assess

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var openPortRe = regexp.MustCompile(`(?m)^(\d+)/(tcp|udp)\s+open\s+(\S+)`)

// analyzeServices derives a service summary from raw discovery output. It is
// a pure function of its input: the same discovery text always produces the
// same summary, which keeps the whole report reproducible.
func (a *Assessor) analyzeServices(discovery string) string {
	matches := openPortRe.FindAllStringSubmatch(discovery, -1)
	if len(matches) == 0 {
		return "No open services identified from discovery output."
	}

	seen := map[string]struct{}{}
	var b strings.Builder
	b.WriteString("Open services identified:\n")
	for _, m := range matches {
		line := fmt.Sprintf("%s/%s %s", m[1], m[2], m[3])
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}

		b.WriteString("  - ")
		b.WriteString(line)
		port, err := strconv.Atoi(m[1])
		if err == nil {
			if name, proto, ok := a.catalog.ProtocolForPort(port); ok {
				fmt.Fprintf(&b, " [%s: risks %s]", name, strings.Join(proto.SecurityRisks, ", "))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
