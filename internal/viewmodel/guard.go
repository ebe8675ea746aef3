package viewmodel

import "sync/atomic"

// RefreshGuard allows one refresh in flight per view.
// Requests made while one is running are dropped, not queued.
type RefreshGuard struct {
	inFlight atomic.Bool
}

// TryBegin marks a refresh as started, reporting false if one already is
func (g *RefreshGuard) TryBegin() bool {
	return g.inFlight.CompareAndSwap(false, true)
}

// End marks the running refresh as finished
func (g *RefreshGuard) End() {
	g.inFlight.Store(false)
}

// InFlight reports whether a refresh is running
func (g *RefreshGuard) InFlight() bool {
	return g.inFlight.Load()
}
