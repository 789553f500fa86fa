// Package assess implements the assessment tools: the four-phase
// comprehensive scan pipeline and the standalone device checks. Every probe
// of the network goes through the process runner; this package never opens
// sockets itself.
package assess

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/khanhnv2901/iotscan/internal/runner"
	"github.com/khanhnv2901/iotscan/internal/shared/constants"
	"github.com/khanhnv2901/iotscan/internal/signature"
)

// Options carries the decoded per-tool arguments. Schema-level validation
// has already happened at the protocol boundary; these accessors only
// tolerate missing or mistyped values by falling back.
type Options map[string]any

func (o Options) String(key, fallback string) string {
	if v, ok := o[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func (o Options) Bool(key string, fallback bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return fallback
}

// Config wires the collaborators every assessment needs.
type Config struct {
	Runner  runner.Runner
	Catalog *signature.Catalog
	Logger  *zap.SugaredLogger

	// External diagnostic programs. Defaults: nmap, curl, ffprobe.
	ScannerBinary string
	HTTPBinary    string
	StreamBinary  string

	// ProcessTimeout bounds each external invocation.
	ProcessTimeout time.Duration

	// CredentialsPerSecond paces sequential credential attempts.
	CredentialsPerSecond float64
}

type Assessor struct {
	runner  runner.Runner
	catalog *signature.Catalog
	logger  *zap.SugaredLogger

	scannerBin string
	httpBin    string
	streamBin  string
	timeout    time.Duration
	pacer      *rate.Limiter
}

func New(cfg Config) *Assessor {
	if cfg.ScannerBinary == "" {
		cfg.ScannerBinary = "nmap"
	}
	if cfg.HTTPBinary == "" {
		cfg.HTTPBinary = "curl"
	}
	if cfg.StreamBinary == "" {
		cfg.StreamBinary = "ffprobe"
	}
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = constants.DefaultProcessTimeout
	}
	if cfg.CredentialsPerSecond <= 0 {
		cfg.CredentialsPerSecond = 2
	}
	return &Assessor{
		runner:     cfg.Runner,
		catalog:    cfg.Catalog,
		logger:     cfg.Logger,
		scannerBin: cfg.ScannerBinary,
		httpBin:    cfg.HTTPBinary,
		streamBin:  cfg.StreamBinary,
		timeout:    cfg.ProcessTimeout,
		pacer:      rate.NewLimiter(rate.Limit(cfg.CredentialsPerSecond), 1),
	}
}

// findingText renders a process result as finding text. Failures and
// timeouts become findings, never errors; a phase keeps going on them.
func findingText(res runner.Result) string {
	switch res.Status {
	case runner.StatusTimedOut:
		return "Error: command timed out"
	case runner.StatusFailure:
		msg := string(res.Stderr)
		if msg == "" {
			msg = "command failed"
		}
		return "Error: " + msg
	}
	return string(res.Stdout)
}
