// Package leaktest provides a goroutine-count check for tests that
// start background goroutines and must shut them all down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Checker records the goroutine count at construction and compares it
// again on Check.
type Checker struct {
	t      testing.TB
	before int
}

// New snapshots the current goroutine count.
func New(t testing.TB) *Checker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)
	return &Checker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test if more than tolerance goroutines outlive the
// snapshot. A small tolerance absorbs runtime background goroutines.
func (c *Checker) Check(tolerance int) {
	c.t.Helper()
	runtime.Gosched()
	time.Sleep(50 * time.Millisecond)
	runtime.GC()
	time.Sleep(50 * time.Millisecond)

	after := runtime.NumGoroutine()
	if leaked := after - c.before; leaked > tolerance {
		c.t.Errorf("goroutine leak: before=%d after=%d leaked=%d (tolerance=%d)",
			c.before, after, leaked, tolerance)
	}
}
