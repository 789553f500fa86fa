package ledger

import (
	"sync"
	"time"
)

// Entry records one accepted scan request. Entries are append-only and never
// mutated for the life of the process.
type Entry struct {
	Tool   string
	Target string
	At     time.Time
}

// Ledger is the in-memory audit record of accepted requests and the state
// behind the sliding-window rate limit. Saturation checks count over the
// whole ledger at query time; Compact exists for long-running servers.
type Ledger struct {
	mu      sync.Mutex
	entries []Entry

	window      time.Duration
	maxInWindow int
	now         func() time.Time
}

func New(window time.Duration, maxInWindow int) *Ledger {
	return NewWithClock(window, maxInWindow, time.Now)
}

// NewWithClock injects the clock, so window aging is testable.
func NewWithClock(window time.Duration, maxInWindow int, clock func() time.Time) *Ledger {
	return &Ledger{
		window:      window,
		maxInWindow: maxInWindow,
		now:         clock,
	}
}

// countWindowLocked counts entries inside (now-window, now]. Callers hold mu.
func (l *Ledger) countWindowLocked(now time.Time) int {
	cutoff := now.Add(-l.window)
	n := 0
	for _, e := range l.entries {
		if e.At.After(cutoff) {
			n++
		}
	}
	return n
}

// Saturated reports whether the window already holds the maximum number of
// accepted requests.
func (l *Ledger) Saturated() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.countWindowLocked(l.now()) >= l.maxInWindow
}

// Record appends unconditionally. Callers must only record after a positive
// validation decision; use Admit for the combined check.
func (l *Ledger) Record(tool, target string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Tool: tool, Target: target, At: l.now()})
}

// Admit is the atomic check-then-record unit: under one lock it refuses the
// request when the window is saturated, and otherwise appends exactly one
// entry. Two concurrent requests can never both take the last window slot.
func (l *Ledger) Admit(tool, target string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if l.countWindowLocked(now) >= l.maxInWindow {
		return false
	}
	l.entries = append(l.entries, Entry{Tool: tool, Target: target, At: now})
	return true
}

// Len returns the total number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the full ledger in append order.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Compact drops entries that have aged past the window and returns how many
// were removed. Aged entries can no longer affect saturation, so dropping
// them does not change any admission decision.
func (l *Ledger) Compact() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := l.now().Add(-l.window)
	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.At.After(cutoff) {
			kept = append(kept, e)
		}
	}
	dropped := len(l.entries) - len(kept)
	l.entries = kept
	return dropped
}
