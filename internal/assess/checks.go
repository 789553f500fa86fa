package assess

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/khanhnv2901/iotscan/internal/runner"
)

// credentialSweep tries manufacturer default credentials against the device's
// web interface. Attempts are paced by the limiter; onlyManufacturer narrows
// the sweep to one vendor profile. An accepted login tags the finding with
// the default_credentials identifier for the risk summary.
func (a *Assessor) credentialSweep(ctx context.Context, target string, schemes []string, onlyManufacturer string) string {
	names := a.catalog.ManufacturerNames()
	if onlyManufacturer != "" {
		if _, ok := a.catalog.Manufacturer(onlyManufacturer); !ok {
			return fmt.Sprintf("Unknown device type %q; no credential profile in catalog", onlyManufacturer)
		}
		names = []string{onlyManufacturer}
	}

	var accepted []string
	attempts := 0
	for _, name := range names {
		m, _ := a.catalog.Manufacturer(name)
		path := "/"
		if len(m.WebPaths) > 0 {
			path = normalizePath(m.WebPaths[0])
		}
		for _, cred := range m.DefaultCredentials {
			for _, scheme := range schemes {
				if err := a.pacer.Wait(ctx); err != nil {
					return fmt.Sprintf("Credential sweep interrupted after %d attempts", attempts)
				}
				attempts++
				url := scheme + "://" + target + path
				args := []string{"-s", "-o", "/dev/null", "-w", "%{http_code}", "--max-time", "10",
					"-u", cred.Username + ":" + cred.Password, url}
				res := a.runner.Run(ctx, a.httpBin, args, a.timeout)
				if res.Status == runner.StatusSuccess && strings.TrimSpace(string(res.Stdout)) == "200" {
					accepted = append(accepted,
						fmt.Sprintf("%s %q/%q over %s", name, cred.Username, cred.Password, scheme))
				}
			}
		}
	}

	if len(accepted) == 0 {
		return fmt.Sprintf("No default credentials accepted (%d attempts)", attempts)
	}
	sort.Strings(accepted)
	return fmt.Sprintf("Indicator: default_credentials\nAccepted logins:\n  %s",
		strings.Join(accepted, "\n  "))
}

type streamProbe struct {
	path string
	open bool
	text string
}

// probeStreams runs the stream prober against each path without credentials.
func (a *Assessor) probeStreams(ctx context.Context, target string, paths []string) []streamProbe {
	probes := make([]streamProbe, 0, len(paths))
	for _, path := range paths {
		url := "rtsp://" + target + ":554" + normalizePath(path)
		args := []string{"-v", "quiet", "-show_streams", "-rtsp_transport", "tcp", url}
		res := a.runner.Run(ctx, a.streamBin, args, a.timeout)
		probes = append(probes, streamProbe{
			path: normalizePath(path),
			open: res.Status == runner.StatusSuccess,
			text: findingText(res),
		})
	}
	return probes
}

// streamSecurityCheck probes the catalog's known stream paths. Any stream
// that opens without credentials is an unencrypted_streams indicator.
func (a *Assessor) streamSecurityCheck(ctx context.Context, target string) string {
	probes := a.probeStreams(ctx, target, a.streamPaths())

	var open []string
	for _, p := range probes {
		if p.open {
			open = append(open, p.path)
		}
	}
	if len(open) == 0 {
		return fmt.Sprintf("No unauthenticated streams found (%d paths probed)", len(probes))
	}
	return fmt.Sprintf("Indicator: unencrypted_streams\nStreams open without authentication:\n  %s",
		strings.Join(open, "\n  "))
}

// webInterfaceCheck fetches the device's root page headers.
func (a *Assessor) webInterfaceCheck(ctx context.Context, target string) string {
	args := []string{"-s", "-I", "--max-time", "10", "http://" + target + "/"}
	res := a.runner.Run(ctx, a.httpBin, args, a.timeout)
	if res.Status != runner.StatusSuccess {
		return findingText(res)
	}
	headers := strings.TrimSpace(string(res.Stdout))
	if headers == "" {
		return "Web interface reachable but returned no headers"
	}
	return "Web interface reachable; response headers:\n" + headers
}

// firmwareCheck grabs the HTTP banner and maps an identified vendor to its
// catalogued CVEs. manufacturer, when set, skips detection.
func (a *Assessor) firmwareCheck(ctx context.Context, target, manufacturer string) string {
	banner := ""
	args := []string{"-s", "-I", "--max-time", "10", "http://" + target + "/"}
	res := a.runner.Run(ctx, a.httpBin, args, a.timeout)
	if res.Status == runner.StatusSuccess {
		banner = string(res.Stdout)
	}

	name := manufacturer
	if name == "" {
		name = a.matchManufacturerBanner(banner)
	}
	if name == "" {
		return "Manufacturer not identified from banner; firmware version not verified"
	}

	m, ok := a.catalog.Manufacturer(name)
	if !ok {
		return fmt.Sprintf("Manufacturer %q not in catalog; firmware version not verified", name)
	}
	if len(m.Vulnerabilities) == 0 {
		return fmt.Sprintf("Manufacturer %s identified; no catalogued CVEs", name)
	}
	cves := append([]string(nil), m.Vulnerabilities...)
	sort.Strings(cves)
	return fmt.Sprintf("Indicator: outdated_firmware\nManufacturer %s; known CVEs to verify against installed firmware:\n  %s",
		name, strings.Join(cves, "\n  "))
}

// matchManufacturerBanner finds a catalog vendor named in a response banner.
func (a *Assessor) matchManufacturerBanner(banner string) string {
	lower := strings.ToLower(banner)
	for _, name := range a.catalog.ManufacturerNames() {
		if strings.Contains(lower, name) {
			return name
		}
	}
	return ""
}

// streamPaths returns the deduplicated, sorted stream paths across vendors.
func (a *Assessor) streamPaths() []string {
	seen := map[string]struct{}{}
	for _, name := range a.catalog.ManufacturerNames() {
		m, _ := a.catalog.Manufacturer(name)
		for _, p := range m.StreamPaths {
			seen[normalizePath(p)] = struct{}{}
		}
	}
	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}
