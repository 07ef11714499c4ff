// Package leaktest backs the connection-pool and event-bus tests with simple
// goroutine and memory leak checks.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settle yields and waits briefly so short-lived goroutines and pending
// frees don't show up as leaks.
func settle(d time.Duration) {
	runtime.Gosched()
	time.Sleep(d)
}

// GoroutineChecker compares the goroutine count before and after the code
// under test.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	settle(10 * time.Millisecond)
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines outlived the code
// under test. Pool shutdown tests use tolerance 0.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	settle(50 * time.Millisecond)
	runtime.GC()
	settle(50 * time.Millisecond)

	after := runtime.NumGoroutine()
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// MemoryChecker compares heap usage before and after the code under test.
type MemoryChecker struct {
	before runtime.MemStats
	t      testing.TB
}

// NewMemoryChecker records current heap stats as the baseline.
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()

	runtime.GC()
	settle(10 * time.Millisecond)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &MemoryChecker{before: m, t: t}
}

// Check fails the test when the heap grew by more than maxGrowthMB after a
// final collection.
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	runtime.GC()
	settle(50 * time.Millisecond)

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	beforeMB := float64(m.before.Alloc) / 1024 / 1024
	afterMB := float64(after.Alloc) / 1024 / 1024
	if growth := afterMB - beforeMB; growth > maxGrowthMB {
		m.t.Errorf("memory leak: before=%.2fMB after=%.2fMB growth=%.2fMB (max=%.2fMB)",
			beforeMB, afterMB, growth, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if any goroutine survives it.
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and fails the test if the heap grew past the cap.
func CheckNoMemoryLeak(t *testing.T, maxGrowthMB float64, fn func()) {
	t.Helper()

	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}

// WaitForGoroutines polls until the goroutine count drops to target or the
// timeout passes.
func WaitForGoroutines(t *testing.T, target int, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		runtime.Gosched()
		if runtime.NumGoroutine() <= target {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Errorf("timeout waiting for goroutines: current=%d target=%d",
		runtime.NumGoroutine(), target)
}
