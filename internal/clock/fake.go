package clock

import (
	"sync"
	"time"
)

// Fake is a manually driven Clock. Timers fire only when Advance moves the
// clock past their deadline.
type Fake struct {
	mu        sync.Mutex
	now       time.Time
	timers    []*fakeTimer
	requested []time.Duration
}

var _ Clock = (*Fake)(nil)

func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Location() *time.Location {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now.Location()
}

func (f *Fake) Set(now time.Time) {
	f.mu.Lock()
	f.now = now
	f.mu.Unlock()
	f.fire()
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
	f.fire()
}

func (f *Fake) NewTimer(d time.Duration) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := &fakeTimer{
		fake:     f,
		deadline: f.now.Add(d),
		ch:       make(chan time.Time, 1),
	}
	f.timers = append(f.timers, t)
	f.requested = append(f.requested, d)
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// Requested returns every duration passed to NewTimer, in call order.
func (f *Fake) Requested() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.requested...)
}

// WaitForTimers blocks until n timers are pending or the timeout elapses.
func (f *Fake) WaitForTimers(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if f.Pending() >= n {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return f.Pending() >= n
}

func (f *Fake) fire() {
	f.mu.Lock()
	defer f.mu.Unlock()

	remaining := f.timers[:0]
	for _, t := range f.timers {
		if f.now.Before(t.deadline) {
			remaining = append(remaining, t)
			continue
		}
		t.ch <- f.now
	}
	f.timers = remaining
}

func (f *Fake) remove(t *fakeTimer) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, pending := range f.timers {
		if pending == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return true
		}
	}
	return false
}

type fakeTimer struct {
	fake     *Fake
	deadline time.Time
	ch       chan time.Time
}

func (t *fakeTimer) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTimer) Stop() bool {
	return t.fake.remove(t)
}
