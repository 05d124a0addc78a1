package advisor

import "sync"

// Transition describes a change of regime between two consecutive observations.
type Transition struct {
	From Regime `json:"from" yaml:"from"`
	To   Regime `json:"to"   yaml:"to"`
	// Warn is set when the vehicle leaves the below-minimum regime, the point
	// at which a following-distance warning becomes relevant.
	Warn bool `json:"warn" yaml:"warn"`
}

// Tracker watches a stream of recommendations and reports regime changes.
// It is safe for concurrent use, although transitions are only meaningful
// when observations arrive in sample order.
type Tracker struct {
	mu      sync.Mutex
	current Regime
	seen    bool
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe records r and returns the transition it caused, if any.
// The first observation sets the baseline and never reports a transition.
func (t *Tracker) Observe(r Recommendation) (Transition, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.seen {
		t.seen = true
		t.current = r.Regime
		return Transition{}, false
	}
	if r.Regime == t.current {
		return Transition{}, false
	}

	tr := Transition{
		From: t.current,
		To:   r.Regime,
		Warn: t.current == RegimeBelowMinimum,
	}
	t.current = r.Regime
	return tr, true
}

// Current returns the last observed regime and whether anything was observed.
func (t *Tracker) Current() (Regime, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.seen
}

// Reset forgets all observations.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = RegimeBelowMinimum
	t.seen = false
}
