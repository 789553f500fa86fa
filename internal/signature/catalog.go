package signature

import (
	"sort"
)

// Severity classifies a known vulnerability.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// rank orders severities for aggregation; unknown values rank lowest.
func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Max returns the higher of two severities.
func (s Severity) Max(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// Credential is one default username/password pair shipped by a vendor.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Manufacturer describes one camera/IoT vendor: which ports its devices
// listen on, the credentials they ship with, and the CVEs known against them.
type Manufacturer struct {
	Ports              []int        `json:"ports"`
	DefaultCredentials []Credential `json:"default_credentials"`
	Vulnerabilities    []string     `json:"vulnerabilities"`
	StreamPaths        []string     `json:"rtsp_paths"`
	WebPaths           []string     `json:"web_paths"`
}

// Protocol describes one IoT protocol and its characteristic risks.
type Protocol struct {
	Port          int      `json:"port"`
	SecurityRisks []string `json:"security_risks"`
}

// Vulnerability describes one catalogued weakness class.
type Vulnerability struct {
	Severity    Severity `json:"severity"`
	Impact      string   `json:"impact"`
	Remediation string   `json:"remediation"`
	CVSSScore   float64  `json:"cvss_score"`
}

// Catalog is the immutable signature lookup table. It is loaded once at
// startup and shared read-only by all concurrent scans; nothing writes to it
// after load, so no locking is needed.
type Catalog struct {
	Manufacturers   map[string]Manufacturer  `json:"camera_manufacturers"`
	Protocols       map[string]Protocol      `json:"iot_protocols"`
	Vulnerabilities map[string]Vulnerability `json:"common_vulnerabilities"`
}

// Manufacturer looks up a vendor profile by name.
func (c *Catalog) Manufacturer(name string) (Manufacturer, bool) {
	m, ok := c.Manufacturers[name]
	return m, ok
}

// ManufacturerNames returns vendor names in sorted order so that every
// iteration over the catalog is deterministic.
func (c *Catalog) ManufacturerNames() []string {
	names := make([]string, 0, len(c.Manufacturers))
	for name := range c.Manufacturers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VulnerabilityIDs returns catalogued vulnerability identifiers in sorted order.
func (c *Catalog) VulnerabilityIDs() []string {
	ids := make([]string, 0, len(c.Vulnerabilities))
	for id := range c.Vulnerabilities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ProtocolNames returns protocol names in sorted order.
func (c *Catalog) ProtocolNames() []string {
	names := make([]string, 0, len(c.Protocols))
	for name := range c.Protocols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProtocolForPort finds the protocol profile registered for a port. When two
// protocols share a port the alphabetically first name wins, keeping lookups
// deterministic.
func (c *Catalog) ProtocolForPort(port int) (string, Protocol, bool) {
	for _, name := range c.ProtocolNames() {
		if p := c.Protocols[name]; p.Port == port {
			return name, p, true
		}
	}
	return "", Protocol{}, false
}

// AllPorts returns the union of every manufacturer and protocol port, sorted.
func (c *Catalog) AllPorts() []int {
	seen := map[int]struct{}{}
	for _, m := range c.Manufacturers {
		for _, p := range m.Ports {
			seen[p] = struct{}{}
		}
	}
	for _, p := range c.Protocols {
		seen[p.Port] = struct{}{}
	}
	ports := make([]int, 0, len(seen))
	for p := range seen {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports
}
