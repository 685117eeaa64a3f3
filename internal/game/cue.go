package game

import (
	"time"
)

// CueState is the accuracy tier a live cue currently sits in.
//
// A cue rises Early -> OK -> Good -> Perfect and falls back
// Perfect -> Good -> OK -> Late as the clock passes its note.
type CueState int

const (
	Early CueState = iota
	InOK
	InGood
	InPerfect
	Late
)

var stateNames = [...]string{"Early", "OK", "Good", "Perfect", "Late"}

func (s CueState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Judgement is the outcome of a press landing while in s.
func (s CueState) Judgement() Judgement {
	switch s {
	case InOK:
		return OK
	case InGood:
		return Good
	case InPerfect:
		return Perfect
	}
	return Miss
}

// Window holds the accuracy bounds of one note.
type Window struct {
	OkStart, OkEnd           time.Duration
	GoodStart, GoodEnd       time.Duration
	PerfectStart, PerfectEnd time.Duration
}

// NewWindow centres windows of the given full widths on t.
// ok >= good >= perfect must hold for the bounds to nest.
func NewWindow(t, ok, good, perfect time.Duration) Window {
	return Window{
		OkStart:      t - ok/2,
		OkEnd:        t + ok/2,
		GoodStart:    t - good/2,
		GoodEnd:      t + good/2,
		PerfectStart: t - perfect/2,
		PerfectEnd:   t + perfect/2,
	}
}

// Cue is a spawned, still live note.
type Cue struct {
	Note        *Note
	Lane        Lane
	Window      Window
	State       CueState
	Unmatchable bool // The note's lane is not configured
	Resolved    bool
	Judgement   Judgement
}

func NewCue(note *Note, lane Lane, window Window) *Cue {
	return &Cue{Note: note, Lane: lane, Window: window, State: Early}
}

// Advance moves the cue at most one state for the clock time now, and
// reports whether the state changed.
func (c *Cue) Advance(now time.Duration) bool {
	w := &c.Window
	next := c.State
	switch c.State {
	case Early:
		if now > w.OkStart {
			next = InOK
		}
	case InOK:
		if now > w.GoodStart && now < w.PerfectStart {
			next = InGood
		} else if now > w.OkEnd {
			next = Late
		}
	case InGood:
		if now > w.PerfectStart && now < w.PerfectEnd {
			next = InPerfect
		} else if now > w.GoodEnd {
			next = InOK
		}
	case InPerfect:
		if now > w.PerfectEnd {
			next = InGood
		}
	}
	// Late has no way out
	changed := next != c.State
	c.State = next
	return changed
}

// Judgeable reports whether a press can resolve the cue right now.
func (c *Cue) Judgeable() bool {
	return !c.Resolved && !c.Unmatchable && c.State != Early && c.State != Late
}

// Resolve marks the cue as done with the given outcome.
func (c *Cue) Resolve(j Judgement) {
	c.Resolved = true
	c.Judgement = j
}
