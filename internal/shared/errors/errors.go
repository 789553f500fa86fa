package errors

import (
	"errors"
	"fmt"
)

// Validation rejections. Each maps to one closed rejection reason; the
// human-readable text is what callers see at the protocol boundary.
var (
	ErrMissingTarget  = errors.New("no target specified")
	ErrBannedTarget   = errors.New("scanning this target is not permitted")
	ErrInvalidAddress = errors.New("invalid IP address or network range")
	ErrRangeTooLarge  = errors.New("network range too large (max /24)")
	ErrRateLimited    = errors.New("rate limit exceeded - please wait before scanning again")
)

// Catalog errors
var (
	ErrCatalogEmpty = errors.New("signature catalog has no entries")
)

// RejectionError is returned when a scan request fails validation. Reason is
// always one of the validation sentinels above.
type RejectionError struct {
	Target string
	Reason error
}

func (e *RejectionError) Error() string {
	if e.Target == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %s", e.Target, e.Reason.Error())
}

func (e *RejectionError) Unwrap() error { return e.Reason }

// UnknownToolError is returned when a tool identifier is outside the
// registered enumeration.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Tool)
}

// ToolExecutionError wraps any failure raised inside a tool handler so that
// nothing untyped crosses the dispatch boundary.
type ToolExecutionError struct {
	Tool  string
	Cause error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool %s failed: %v", e.Tool, e.Cause)
}

func (e *ToolExecutionError) Unwrap() error { return e.Cause }
