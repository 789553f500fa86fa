package cmd

import (
	"testing"

	"github.com/khanhnv2901/iotscan/internal/dispatch"
)

func TestToolCatalogMatchesDispatchEnumeration(t *testing.T) {
	specs := toolCatalog()
	tools := dispatch.AllTools()

	if len(specs) != len(tools) {
		t.Fatalf("catalog has %d tools, dispatcher has %d", len(specs), len(tools))
	}
	for i, id := range tools {
		if specs[i].ID != id {
			t.Fatalf("catalog[%d] = %s, want %s", i, specs[i].ID, id)
		}
	}
}

func TestToolCatalogSchemas(t *testing.T) {
	for _, spec := range toolCatalog() {
		if spec.Description == "" {
			t.Fatalf("%s: missing description", spec.ID)
		}
		if spec.TargetKey != "target" && spec.TargetKey != "network_range" {
			t.Fatalf("%s: unexpected target key %q", spec.ID, spec.TargetKey)
		}
		for _, o := range spec.Options {
			if o.Type != "string" && o.Type != "boolean" {
				t.Fatalf("%s option %s: unexpected type %q", spec.ID, o.Name, o.Type)
			}
			if o.Type == "boolean" && len(o.Enum) > 0 {
				t.Fatalf("%s option %s: boolean with enum", spec.ID, o.Name)
			}
		}
	}
}

func TestHealthCheckUsesNetworkRange(t *testing.T) {
	for _, spec := range toolCatalog() {
		if spec.ID == dispatch.ToolHealthCheck {
			if spec.TargetKey != "network_range" {
				t.Fatalf("health_check target key = %q", spec.TargetKey)
			}
			return
		}
	}
	t.Fatal("health_check missing from catalog")
}
