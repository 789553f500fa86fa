package dispatch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/khanhnv2901/iotscan/internal/assess"
	"github.com/khanhnv2901/iotscan/internal/ledger"
	"github.com/khanhnv2901/iotscan/internal/runner"
	"github.com/khanhnv2901/iotscan/internal/shared/constants"
	secerrors "github.com/khanhnv2901/iotscan/internal/shared/errors"
	"github.com/khanhnv2901/iotscan/internal/signature"
	"github.com/khanhnv2901/iotscan/internal/validate"
)

const testNotice = "LEGAL WARNING: authorized testing only."

// countingRunner returns a fixed result and counts invocations.
type countingRunner struct {
	mu    sync.Mutex
	runs  int
	res   runner.Result
	panic bool
}

func (c *countingRunner) Run(_ context.Context, _ string, _ []string, _ time.Duration) runner.Result {
	c.mu.Lock()
	c.runs++
	c.mu.Unlock()
	if c.panic {
		panic("runner exploded")
	}
	return c.res
}

func (c *countingRunner) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runs
}

func newTestDispatcher(r runner.Runner) (*Dispatcher, *ledger.Ledger) {
	logger := zap.NewNop().Sugar()
	led := ledger.New(constants.RateWindow, constants.RateMaxScans)
	assessor := assess.New(assess.Config{
		Runner:               r,
		Catalog:              signature.Default(),
		Logger:               logger,
		CredentialsPerSecond: 10000,
	})
	return New(validate.New(led, logger), assessor, testNotice, logger), led
}

func TestDispatchUnknownTool(t *testing.T) {
	d, led := newTestDispatcher(&countingRunner{})

	for _, id := range []string{"", "port_scan", "comprehensive", "COMPREHENSIVE_SCAN"} {
		_, err := d.Dispatch(context.Background(), Request{Tool: ToolID(id), Target: "192.168.1.100"})
		var unknown *secerrors.UnknownToolError
		if !errors.As(err, &unknown) {
			t.Fatalf("tool %q: got %v, want UnknownToolError", id, err)
		}
	}
	if led.Len() != 0 {
		t.Fatal("unknown tools must not touch the ledger")
	}
}

func TestDispatchEveryRegisteredTool(t *testing.T) {
	cr := &countingRunner{res: runner.Result{Status: runner.StatusSuccess, Stdout: []byte("ok")}}
	d, _ := newTestDispatcher(cr)

	for _, id := range AllTools() {
		text, err := d.Dispatch(context.Background(), Request{Tool: id, Target: "192.168.1.0/24"})
		if err != nil {
			t.Fatalf("tool %s: %v", id, err)
		}
		if !strings.HasPrefix(text, testNotice) {
			t.Fatalf("tool %s report missing disclosure prefix", id)
		}
	}
}

func TestDispatchComprehensiveScanScenario(t *testing.T) {
	cr := &countingRunner{res: runner.Result{Status: runner.StatusSuccess, Stdout: []byte("80/tcp open http\n")}}
	d, led := newTestDispatcher(cr)

	text, err := d.Dispatch(context.Background(), Request{
		Tool:    ToolComprehensiveScan,
		Target:  "192.168.1.100",
		Options: assess.Options{"scan_intensity": "quick"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(text, testNotice) {
		t.Fatal("report must start with the disclosure notice")
	}
	for _, header := range []string{"NETWORK DISCOVERY", "SERVICE ANALYSIS", "VULNERABILITY ASSESSMENT", "RISK SUMMARY"} {
		if !strings.Contains(text, header) {
			t.Fatalf("report missing section %q", header)
		}
	}
	if led.Len() != 1 {
		t.Fatalf("accepted scan appended %d ledger entries, want exactly 1", led.Len())
	}
}

func TestDispatchBannedTargetRunsNothing(t *testing.T) {
	cr := &countingRunner{res: runner.Result{Status: runner.StatusSuccess}}
	d, led := newTestDispatcher(cr)

	_, err := d.Dispatch(context.Background(), Request{Tool: ToolComprehensiveScan, Target: "127.0.0.1"})
	if !errors.Is(err, secerrors.ErrBannedTarget) {
		t.Fatalf("got %v, want banned-target rejection", err)
	}
	if cr.count() != 0 {
		t.Fatal("rejected request must not launch any external process")
	}
	if led.Len() != 0 {
		t.Fatal("rejected request must not append ledger entries")
	}
}

func TestDispatchRangeTooLarge(t *testing.T) {
	d, _ := newTestDispatcher(&countingRunner{})

	_, err := d.Dispatch(context.Background(), Request{Tool: ToolHealthCheck, Target: "10.0.0.0/23"})
	if !errors.Is(err, secerrors.ErrRangeTooLarge) {
		t.Fatalf("got %v, want range-too-large rejection", err)
	}
}

func TestDispatchRateLimitsEleventh(t *testing.T) {
	cr := &countingRunner{res: runner.Result{Status: runner.StatusSuccess, Stdout: []byte("ok")}}
	d, _ := newTestDispatcher(cr)

	for i := 0; i < 10; i++ {
		if _, err := d.Dispatch(context.Background(), Request{Tool: ToolHealthCheck, Target: "192.168.1.0/24"}); err != nil {
			t.Fatalf("request %d: %v", i+1, err)
		}
	}
	_, err := d.Dispatch(context.Background(), Request{Tool: ToolHealthCheck, Target: "192.168.1.0/24"})
	if !errors.Is(err, secerrors.ErrRateLimited) {
		t.Fatalf("11th request: got %v, want rate-limited rejection", err)
	}
}

func TestDispatchConvertsPanicToToolExecutionError(t *testing.T) {
	d, _ := newTestDispatcher(&countingRunner{panic: true})

	_, err := d.Dispatch(context.Background(), Request{Tool: ToolComprehensiveScan, Target: "192.168.1.100"})
	var execErr *secerrors.ToolExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("got %v, want ToolExecutionError", err)
	}
	if !strings.Contains(execErr.Error(), "comprehensive_scan") {
		t.Fatalf("error must name the tool: %v", execErr)
	}
}

func TestAllToolsClosedEnumeration(t *testing.T) {
	tools := AllTools()
	if len(tools) != 8 {
		t.Fatalf("enumeration has %d tools, want 8", len(tools))
	}
	seen := map[ToolID]bool{}
	for _, id := range tools {
		if seen[id] {
			t.Fatalf("duplicate tool %s", id)
		}
		seen[id] = true
	}
}
