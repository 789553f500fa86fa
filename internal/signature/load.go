package signature

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// Load reads a signature catalog document from path. Any failure (missing
// file, unreadable file, malformed JSON, empty document) falls back to the
// built-in defaults; the catalog is required for startup, so Load never
// returns an error.
func Load(path string, logger *zap.SugaredLogger) *Catalog {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnw("signatures file not readable, using built-in defaults", "path", path, "error", err)
		return Default()
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		logger.Warnw("signatures file malformed, using built-in defaults", "path", path, "error", err)
		return Default()
	}

	if len(catalog.Manufacturers) == 0 && len(catalog.Protocols) == 0 && len(catalog.Vulnerabilities) == 0 {
		logger.Warnw("signatures file has no entries, using built-in defaults", "path", path)
		return Default()
	}

	logger.Infow("signature catalog loaded",
		"path", path,
		"manufacturers", len(catalog.Manufacturers),
		"protocols", len(catalog.Protocols),
		"vulnerabilities", len(catalog.Vulnerabilities))
	return &catalog
}
