package signature

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadMissingFileFallsBack(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop().Sugar())
	if _, ok := c.Manufacturer("hikvision"); !ok {
		t.Fatal("missing file must fall back to built-in defaults")
	}
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sig.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := Load(path, zap.NewNop().Sugar())
	if _, ok := c.Manufacturer("dahua"); !ok {
		t.Fatal("malformed file must fall back to built-in defaults")
	}
}

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sig.json")
	doc := `{
		"camera_manufacturers": {
			"uniview": {
				"ports": [80, 554],
				"default_credentials": [{"username": "admin", "password": "123456"}],
				"vulnerabilities": ["CVE-2024-0001"],
				"rtsp_paths": ["/media/video1"],
				"web_paths": ["/"]
			}
		},
		"iot_protocols": {
			"rtsp": {"port": 554, "security_risks": ["unencrypted_streams"]}
		},
		"common_vulnerabilities": {
			"default_credentials": {
				"severity": "HIGH",
				"impact": "Full device compromise",
				"remediation": "Change default passwords",
				"cvss_score": 9.8
			}
		}
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Load(path, zap.NewNop().Sugar())
	m, ok := c.Manufacturer("uniview")
	if !ok {
		t.Fatal("loaded catalog missing uniview")
	}
	if len(m.DefaultCredentials) != 1 || m.DefaultCredentials[0].Password != "123456" {
		t.Fatalf("credential mismatch: %+v", m.DefaultCredentials)
	}
	if v := c.Vulnerabilities["default_credentials"]; v.Severity != SeverityHigh || v.CVSSScore != 9.8 {
		t.Fatalf("vulnerability mismatch: %+v", v)
	}
	// a loaded catalog replaces, not merges, the defaults
	if _, ok := c.Manufacturer("hikvision"); ok {
		t.Fatal("loaded catalog must not merge with defaults")
	}
}
