package report

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// FallbackNotice is used whenever no disclosure document is available.
// Startup never fails on a missing notice.
const FallbackNotice = "LEGAL WARNING: Only test devices you own or have explicit permission to scan. Unauthorized testing may be illegal."

// LoadNotice reads the disclosure notice document and returns its first
// section (everything before the first "##" heading). Any read failure falls
// back to the built-in notice.
func LoadNotice(path string, logger *zap.SugaredLogger) string {
	if path == "" {
		return FallbackNotice
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnw("disclosure notice not readable, using built-in fallback", "path", path, "error", err)
		return FallbackNotice
	}
	notice, _, _ := strings.Cut(string(data), "##")
	notice = strings.TrimSpace(notice)
	if notice == "" {
		logger.Warnw("disclosure notice empty, using built-in fallback", "path", path)
		return FallbackNotice
	}
	return notice
}
