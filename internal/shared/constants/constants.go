package constants

import "time"

const (
	// RateWindow is the sliding window the scan ledger counts over.
	RateWindow = 300 * time.Second
	// RateMaxScans is how many accepted requests fit inside one window.
	// Once this many entries occupy the window, the next request is refused.
	RateMaxScans = 10
	// MaxRangeAddresses caps the size of an accepted network range (a /24).
	MaxRangeAddresses = 256
	// DefaultProcessTimeout bounds a single external program invocation.
	DefaultProcessTimeout = 60 * time.Second
	// MaxScanTime bounds one whole scan across all of its phases.
	MaxScanTime = 300 * time.Second
)

// BannedTargets are literal addresses that are never scanned: loopback,
// unspecified and broadcast.
func BannedTargets() []string {
	return []string{"0.0.0.0", "255.255.255.255", "127.0.0.1"}
}
