package ledger

import (
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time forward deterministically.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSaturatedGrowsWithWindow(t *testing.T) {
	clock := newFakeClock()
	l := NewWithClock(300*time.Second, 10, clock.Now)

	for i := 0; i < 10; i++ {
		if l.Saturated() {
			t.Fatalf("saturated after %d entries, want unsaturated until 10", i)
		}
		l.Record("comprehensive_scan", "192.168.1.10")
	}

	if !l.Saturated() {
		t.Fatal("expected saturation once 10 entries occupy the window")
	}
}

func TestSaturationAgesOut(t *testing.T) {
	clock := newFakeClock()
	l := NewWithClock(300*time.Second, 10, clock.Now)

	for i := 0; i < 10; i++ {
		l.Record("health_check", "10.0.0.0/24")
	}
	if !l.Saturated() {
		t.Fatal("expected saturation at 10 entries")
	}

	clock.Advance(301 * time.Second)
	if l.Saturated() {
		t.Fatal("expected entries to age out past the window")
	}

	// aged entries stay in the ledger until compaction
	if got := l.Len(); got != 10 {
		t.Fatalf("expected 10 retained entries, got %d", got)
	}
}

func TestAdmitRefusesEleventh(t *testing.T) {
	clock := newFakeClock()
	l := NewWithClock(300*time.Second, 10, clock.Now)

	for i := 0; i < 10; i++ {
		if !l.Admit("credential_test", "192.168.1.20") {
			t.Fatalf("request %d refused, want first 10 admitted", i+1)
		}
	}
	if l.Admit("credential_test", "192.168.1.20") {
		t.Fatal("11th request inside the window must be refused")
	}
	if got := l.Len(); got != 10 {
		t.Fatalf("refused request appended an entry: len=%d", got)
	}
}

func TestAdmitAtomicUnderConcurrency(t *testing.T) {
	clock := newFakeClock()
	l := NewWithClock(300*time.Second, 10, clock.Now)

	var wg sync.WaitGroup
	admitted := make(chan bool, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			admitted <- l.Admit("protocol_test", "192.168.1.30")
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for ok := range admitted {
		if ok {
			count++
		}
	}
	if count != 10 {
		t.Fatalf("admitted %d of 50 concurrent requests, want exactly 10", count)
	}
	if got := l.Len(); got != 10 {
		t.Fatalf("ledger holds %d entries, want 10", got)
	}
}

func TestCompactDropsAgedEntries(t *testing.T) {
	clock := newFakeClock()
	l := NewWithClock(300*time.Second, 10, clock.Now)

	l.Record("firmware_analysis", "192.168.1.40")
	l.Record("firmware_analysis", "192.168.1.41")
	clock.Advance(301 * time.Second)
	l.Record("firmware_analysis", "192.168.1.42")

	if dropped := l.Compact(); dropped != 2 {
		t.Fatalf("dropped %d entries, want 2", dropped)
	}
	entries := l.Entries()
	if len(entries) != 1 || entries[0].Target != "192.168.1.42" {
		t.Fatalf("unexpected surviving entries: %+v", entries)
	}
}
