package cmd

import "github.com/khanhnv2901/iotscan/internal/dispatch"

// toolOption declares one schema option of a tool.
type toolOption struct {
	Name        string
	Type        string // "string" or "boolean"
	Description string
	Enum        []string
	StringDef   string
	BoolDef     bool
	HasDefault  bool
}

// toolSpec declares one tool exposed at the protocol boundary: its
// identifier, description, required target field and typed options. The
// serve command registers tools from this table and the tools command lists
// it; keep it the single source of the schema.
type toolSpec struct {
	ID          dispatch.ToolID
	Description string
	TargetKey   string // "target" or "network_range"
	TargetDesc  string
	Options     []toolOption
}

func toolCatalog() []toolSpec {
	return []toolSpec{
		{
			ID:          dispatch.ToolComprehensiveScan,
			Description: "Comprehensive vulnerability scan for IoT devices and cameras with detailed reporting",
			TargetKey:   "target",
			TargetDesc:  "IP address of the IoT device",
			Options: []toolOption{
				{Name: "scan_intensity", Type: "string", Description: "Scan intensity level",
					Enum: []string{"quick", "deep", "stealth"}, StringDef: "quick", HasDefault: true},
				{Name: "check_credentials", Type: "boolean", Description: "Test for default credentials",
					BoolDef: true, HasDefault: true},
			},
		},
		{
			ID:          dispatch.ToolCameraAssessment,
			Description: "Specialized security assessment for IP security cameras with brand detection",
			TargetKey:   "target",
			TargetDesc:  "Camera IP address",
			Options: []toolOption{
				{Name: "camera_type", Type: "string", Description: "Camera manufacturer type",
					Enum: []string{"auto", "hikvision", "dahua", "axis", "generic"}, StringDef: "auto", HasDefault: true},
				{Name: "test_streams", Type: "boolean", Description: "Test RTSP stream security",
					BoolDef: true, HasDefault: true},
			},
		},
		{
			ID:          dispatch.ToolStreamAnalysis,
			Description: "Comprehensive RTSP stream security analysis with authentication testing",
			TargetKey:   "target",
			TargetDesc:  "Camera IP address",
			Options: []toolOption{
				{Name: "check_authentication", Type: "boolean", Description: "Test stream authentication",
					BoolDef: true, HasDefault: true},
				{Name: "test_common_paths", Type: "boolean", Description: "Test common RTSP paths",
					BoolDef: true, HasDefault: true},
			},
		},
		{
			ID:          dispatch.ToolCredentialTest,
			Description: "Advanced default credential testing with manufacturer-specific credentials",
			TargetKey:   "target",
			TargetDesc:  "Device IP address",
			Options: []toolOption{
				{Name: "device_type", Type: "string", Description: "Specific device type for targeted testing"},
				{Name: "protocol", Type: "string", Description: "Protocol to test",
					Enum: []string{"http", "https", "both"}, StringDef: "both", HasDefault: true},
			},
		},
		{
			ID:          dispatch.ToolFirmwareAnalysis,
			Description: "Firmware vulnerability assessment and version checking",
			TargetKey:   "target",
			TargetDesc:  "Device IP address",
			Options: []toolOption{
				{Name: "manufacturer", Type: "string", Description: "Device manufacturer for CVE lookup"},
				{Name: "check_cves", Type: "boolean", Description: "Check for known CVEs",
					BoolDef: true, HasDefault: true},
			},
		},
		{
			ID:          dispatch.ToolNetworkExposureCheck,
			Description: "Network service exposure analysis with risk assessment",
			TargetKey:   "target",
			TargetDesc:  "Device IP address",
			Options: []toolOption{
				{Name: "check_upnp", Type: "boolean", Description: "Check UPNP services",
					BoolDef: true, HasDefault: true},
				{Name: "port_range", Type: "string", Description: "Port range to scan",
					StringDef: "1-10000", HasDefault: true},
			},
		},
		{
			ID:          dispatch.ToolProtocolTest,
			Description: "Smart home protocol security testing (MQTT, Zigbee, Z-Wave)",
			TargetKey:   "target",
			TargetDesc:  "Gateway IP address",
			Options: []toolOption{
				{Name: "protocol", Type: "string", Description: "Protocol to test",
					Enum: []string{"mqtt", "zigbee", "zwave", "all"}, StringDef: "all", HasDefault: true},
				{Name: "check_encryption", Type: "boolean", Description: "Check protocol encryption",
					BoolDef: true, HasDefault: true},
			},
		},
		{
			ID:          dispatch.ToolHealthCheck,
			Description: "Overall security health check for an IoT network segment",
			TargetKey:   "network_range",
			TargetDesc:  "Network range to scan (e.g. 192.168.1.0/24)",
			Options: []toolOption{
				{Name: "check_common_ports", Type: "boolean", Description: "Scan common IoT ports",
					BoolDef: true, HasDefault: true},
			},
		},
	}
}
