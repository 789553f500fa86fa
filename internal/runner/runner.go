package runner

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/khanhnv2901/iotscan/internal/shared/constants"
)

// Status classifies how an external program finished.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusTimedOut
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusTimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Result holds the captured output of one external program run. It belongs
// exclusively to the caller; runs never share buffers.
type Result struct {
	Status Status
	Stdout []byte
	Stderr []byte
}

// Runner executes one external diagnostic program with a bounded deadline.
// Implementations must pass arguments as a vector, never through a shell.
type Runner interface {
	Run(ctx context.Context, name string, args []string, timeout time.Duration) Result
}

// ExecRunner runs programs through os/exec with a deadline-bound context, so
// the child is reaped when the timeout fires or the parent context is
// cancelled.
type ExecRunner struct {
	logger *zap.SugaredLogger
}

func NewExecRunner(logger *zap.SugaredLogger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args []string, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = constants.DefaultProcessTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Infow("executing", "command", name, "args", args, "timeout", timeout)
	err := cmd.Run()

	result := Result{
		Status: classify(err, runCtx.Err()),
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if result.Status == StatusTimedOut {
		r.logger.Warnw("command timed out", "command", name)
	}
	return result
}

// classify maps a finished run onto its status. A deadline or parent
// cancellation means exec killed the child, but only when the run itself
// errored: a process that exited cleanly just as the deadline fired still
// produced usable output and stays a success.
func classify(runErr, ctxErr error) Status {
	switch {
	case runErr == nil:
		return StatusSuccess
	case ctxErr != nil:
		return StatusTimedOut
	default:
		return StatusFailure
	}
}
