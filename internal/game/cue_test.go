package game

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func newTestCue() *Cue {
	note := &Note{Time: 1000 * ms, Lane: "w"}
	return NewCue(note, Lane{ID: "w"}, NewWindow(note.Time, 200*ms, 100*ms, 50*ms))
}

func TestWindowNesting(t *testing.T) {
	widths := [][3]time.Duration{
		{200 * ms, 100 * ms, 50 * ms},
		{100 * ms, 100 * ms, 100 * ms},
		{0, 0, 0},
		{301 * ms, 77 * ms, 3 * ms},
		{time.Second, 999 * ms, 1},
	}
	for _, w := range widths {
		for _, at := range []time.Duration{0, 1000 * ms, 123457 * ms} {
			win := NewWindow(at, w[0], w[1], w[2])
			bounds := []time.Duration{
				win.OkStart, win.GoodStart, win.PerfectStart, at,
				win.PerfectEnd, win.GoodEnd, win.OkEnd,
			}
			for i := 1; i < len(bounds); i++ {
				if bounds[i-1] > bounds[i] {
					t.Log("widths", w, "at", at)
					t.Log("bounds", bounds)
					t.Fail()
				}
			}
		}
	}
}

func TestCueTransitions(t *testing.T) {
	steps := []struct {
		now   time.Duration
		state CueState
	}{
		{899 * ms, Early},
		{901 * ms, InOK},
		{951 * ms, InGood},
		{981 * ms, InPerfect},
		{1000 * ms, InPerfect},
		{1051 * ms, InGood},
		{1101 * ms, InOK},
		{1201 * ms, Late},
	}

	cue := newTestCue()
	for _, step := range steps {
		cue.Advance(step.now)
		if cue.State != step.state {
			t.Errorf("at %v: expected %v, got %v", step.now, step.state, cue.State)
		}
	}
}

func TestCueLateIsTerminal(t *testing.T) {
	cue := newTestCue()
	cue.State = Late
	for now := time.Duration(0); now < 3*time.Second; now += 7 * ms {
		if cue.Advance(now) || cue.State != Late {
			t.Fatalf("late cue moved to %v at %v", cue.State, now)
		}
	}
}

func TestCueOneTransitionPerTick(t *testing.T) {
	// A single tick far past the note only leaves Early.
	cue := newTestCue()
	cue.Advance(5 * time.Second)
	if cue.State != InOK {
		t.Errorf("expected OK after one tick, got %v", cue.State)
	}
	cue.Advance(5 * time.Second)
	if cue.State != Late {
		t.Errorf("expected Late after two ticks, got %v", cue.State)
	}
}

func TestCueStateSequence(t *testing.T) {
	order := map[CueState][]CueState{
		Early:     {InOK},
		InOK:      {InGood, Late},
		InGood:    {InPerfect, InOK},
		InPerfect: {InGood},
	}
	for _, step := range []time.Duration{1 * ms, 3 * ms, 10 * ms, 24 * ms, 49 * ms} {
		cue := newTestCue()
		seen := []CueState{cue.State}
		for now := 850 * ms; now < 1300*ms; now += step {
			prev := cue.State
			if !cue.Advance(now) {
				continue
			}
			seen = append(seen, cue.State)
			allowed := false
			for _, s := range order[prev] {
				if s == cue.State {
					allowed = true
				}
			}
			if !allowed {
				t.Errorf("step %v: illegal transition %v -> %v at %v", step, prev, cue.State, now)
			}
		}
		for _, s := range seen[1:] {
			if s == Early {
				t.Errorf("step %v: revisited Early: %v", step, seen)
			}
		}
		if cue.State != Late {
			t.Errorf("step %v: expected to end Late, got %v (%v)", step, cue.State, seen)
		}
	}
}

func TestCueJudgeable(t *testing.T) {
	cue := newTestCue()
	if cue.Judgeable() {
		t.Error("early cue must not be judgeable")
	}
	cue.Advance(901 * ms)
	if !cue.Judgeable() {
		t.Error("cue in OK must be judgeable")
	}
	cue.Unmatchable = true
	if cue.Judgeable() {
		t.Error("unmatchable cue must not be judgeable")
	}
	cue.Unmatchable = false

	late := newTestCue()
	late.State = Late
	if late.Judgeable() {
		t.Error("late cue must not be judgeable")
	}

	cue.Resolve(OK)
	if cue.Judgeable() {
		t.Error("resolved cue must not be judgeable")
	}
}

var stateResult CueState

func BenchmarkCueAdvance(b *testing.B) {
	cue := newTestCue()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		cue.State = Early
		for now := 880 * ms; now < 1220*ms; now += 16 * ms {
			cue.Advance(now)
		}
	}
	stateResult = cue.State
}
