package signature

// Default returns the built-in signature catalog used when no signatures file
// is configured or the configured one cannot be read. Startup never fails on
// a missing catalog.
func Default() *Catalog {
	return &Catalog{
		Manufacturers: map[string]Manufacturer{
			"hikvision": {
				Ports: []int{80, 443, 554, 8000, 8080, 34567},
				DefaultCredentials: []Credential{
					{Username: "admin", Password: "12345"},
					{Username: "admin", Password: "admin"},
				},
				Vulnerabilities: []string{"CVE-2017-7921", "CVE-2021-36260"},
				StreamPaths:     []string{"/Streaming/Channels/101", "/cam/realmonitor"},
				WebPaths:        []string{"/", "/doc/page/login.asp"},
			},
			"dahua": {
				Ports: []int{80, 443, 554, 37777, 37778},
				DefaultCredentials: []Credential{
					{Username: "admin", Password: "admin"},
					{Username: "admin", Password: ""},
				},
				Vulnerabilities: []string{"CVE-2021-33044", "CVE-2022-30563"},
				StreamPaths:     []string{"/cam/realmonitor", "live.sdp"},
				WebPaths:        []string{"/", "/cgi-bin/login.cgi"},
			},
			"axis": {
				Ports: []int{80, 443, 554},
				DefaultCredentials: []Credential{
					{Username: "root", Password: "pass"},
					{Username: "admin", Password: ""},
				},
				Vulnerabilities: []string{"CVE-2018-10660"},
				StreamPaths:     []string{"/axis-media/media.amp", "live.sdp"},
				WebPaths:        []string{"/", "/view/view.shtml"},
			},
		},
		Protocols: map[string]Protocol{
			"rtsp":  {Port: 554, SecurityRisks: []string{"unencrypted_streams", "weak_authentication"}},
			"onvif": {Port: 80, SecurityRisks: []string{"information_disclosure", "weak_ws_security"}},
			"mqtt":  {Port: 1883, SecurityRisks: []string{"unencrypted_communication", "no_authentication"}},
			"http":  {Port: 80, SecurityRisks: []string{"clear_text_communication", "session_management"}},
			"https": {Port: 443, SecurityRisks: []string{"weak_ssl_configuration"}},
		},
		Vulnerabilities: map[string]Vulnerability{
			"default_credentials": {
				Severity:    SeverityHigh,
				Impact:      "Full device compromise",
				Remediation: "Change default passwords immediately",
				CVSSScore:   9.8,
			},
			"unencrypted_streams": {
				Severity:    SeverityMedium,
				Impact:      "Eavesdropping on video/audio",
				Remediation: "Use encrypted protocols (RTSPS, HTTPS)",
				CVSSScore:   5.9,
			},
			"outdated_firmware": {
				Severity:    SeverityHigh,
				Impact:      "Known exploit vulnerability",
				Remediation: "Update to latest firmware version",
				CVSSScore:   8.2,
			},
		},
	}
}
