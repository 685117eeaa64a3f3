package judge

import (
	"testing"
	"time"

	"git.lost.host/meutraa/cadence/internal/game"
	"git.lost.host/meutraa/cadence/internal/input"
	"git.lost.host/meutraa/cadence/internal/score"
)

const ms = time.Millisecond

func cueAt(lane string, at time.Duration, state game.CueState) *game.Cue {
	note := &game.Note{Time: at, Lane: lane}
	cue := game.NewCue(note, game.Lane{ID: lane}, game.NewWindow(at, 200*ms, 100*ms, 50*ms))
	cue.State = state
	return cue
}

func press(lane string, at time.Duration) input.Sample {
	return input.Sample{Lane: lane, Time: at}
}

func TestEvaluateScoresState(t *testing.T) {
	tests := map[game.CueState]int{
		game.InOK:      1,
		game.InGood:    2,
		game.InPerfect: 3,
		game.Late:      0,
		game.Early:     0,
	}
	for state, points := range tests {
		var tally score.Tally
		j := New(PairAll, &tally, nil)
		cue := cueAt("w", time.Second, state)
		resolved := j.Evaluate([]*game.Cue{cue}, []input.Sample{press("w", time.Second)})
		if tally.Points != points {
			t.Errorf("%v: expected %d points, got %d", state, points, tally.Points)
		}
		scored := points > 0
		if cue.Resolved != scored || (len(resolved) == 1) != scored {
			t.Errorf("%v: resolved=%v with %d resolutions", state, cue.Resolved, len(resolved))
		}
	}
}

func TestEvaluateNoMatchingLane(t *testing.T) {
	var tally score.Tally
	j := New(PairAll, &tally, nil)
	cue := cueAt("w", time.Second, game.InPerfect)
	resolved := j.Evaluate([]*game.Cue{cue}, []input.Sample{press("q", time.Second)})
	if len(resolved) != 0 || tally.Points != 0 || cue.Resolved {
		t.Errorf("press in another lane judged something: %v", resolved)
	}
}

func TestEvaluateOncePerTick(t *testing.T) {
	var tally score.Tally
	j := New(PairAll, &tally, nil)
	cue := cueAt("w", time.Second, game.InGood)
	samples := []input.Sample{press("w", time.Second), press("w", time.Second)}
	j.Evaluate([]*game.Cue{cue}, samples)
	if tally.Points != 2 {
		t.Errorf("expected one judgement worth 2, got %d points", tally.Points)
	}
	// a second pass never judges it again
	j.Evaluate([]*game.Cue{cue}, samples)
	if tally.Points != 2 || tally.Judged() != 1 {
		t.Errorf("cue judged twice: %d points, %d judged", tally.Points, tally.Judged())
	}
}

func TestEvaluatePairing(t *testing.T) {
	tests := []struct {
		pairing  Pairing
		expected []bool // resolved, per cue
	}{
		{PairAll, []bool{true, true, false}},
		{PairFirst, []bool{true, false, false}},
		{PairClosest, []bool{false, true, false}},
	}
	for _, test := range tests {
		var tally score.Tally
		j := New(test.pairing, &tally, nil)
		cues := []*game.Cue{
			cueAt("w", 1000*ms, game.InOK),
			cueAt("w", 1060*ms, game.InGood),
			cueAt("q", 1060*ms, game.InGood),
		}
		j.Evaluate(cues, []input.Sample{press("w", 1050*ms)})
		for i, c := range cues {
			if c.Resolved != test.expected[i] {
				t.Errorf("%v: cue %d resolved=%v, expected %v", test.pairing, i, c.Resolved, test.expected[i])
			}
		}
	}
}

func TestEvaluateExclusivePairingTwoPresses(t *testing.T) {
	for _, pairing := range []Pairing{PairFirst, PairClosest} {
		var tally score.Tally
		j := New(pairing, &tally, nil)
		cues := []*game.Cue{
			cueAt("w", 1000*ms, game.InPerfect),
			cueAt("w", 1010*ms, game.InPerfect),
		}
		j.Evaluate(cues, []input.Sample{press("w", 1000*ms), press("w", 1000*ms)})
		if !cues[0].Resolved || !cues[1].Resolved {
			t.Errorf("%v: expected two presses to judge two cues", pairing)
		}
		if tally.Points != 6 {
			t.Errorf("%v: expected 6 points, got %d", pairing, tally.Points)
		}
	}
}

func TestEvaluateLateCueLeavesPressForNext(t *testing.T) {
	for _, pairing := range []Pairing{PairAll, PairFirst, PairClosest} {
		var tally score.Tally
		j := New(pairing, &tally, nil)
		late := cueAt("w", 1000*ms, game.Late)
		next := cueAt("w", 1250*ms, game.InOK)
		resolved := j.Evaluate([]*game.Cue{late, next}, []input.Sample{press("w", 1201*ms)})
		if late.Resolved {
			t.Errorf("%v: late cue was judged by a press", pairing)
		}
		if !next.Resolved || next.Judgement != game.OK {
			t.Errorf("%v: expected the next cue to be judged OK, got %+v", pairing, next)
		}
		if len(resolved) != 1 || tally.Points != 1 {
			t.Errorf("%v: expected one resolution worth 1, got %d worth %d", pairing, len(resolved), tally.Points)
		}
	}
}

func TestEvaluateSkipsUnmatchable(t *testing.T) {
	var tally score.Tally
	j := New(PairAll, &tally, nil)
	cue := cueAt("x", time.Second, game.InPerfect)
	cue.Unmatchable = true
	j.Evaluate([]*game.Cue{cue}, []input.Sample{press("x", time.Second)})
	if cue.Resolved || tally.Points != 0 {
		t.Error("unmatchable cue was judged")
	}
}

func TestParsePairing(t *testing.T) {
	for _, name := range Pairings() {
		p, err := ParsePairing(name)
		if err != nil || p.String() != name {
			t.Errorf("%s: got %v, %v", name, p, err)
		}
	}
	if _, err := ParsePairing("nearest"); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
}

func TestRegistrySweep(t *testing.T) {
	var r Registry
	hit := cueAt("w", time.Second, game.InPerfect)
	hit.Resolve(game.Perfect)
	late := cueAt("q", time.Second, game.Late)
	live := cueAt("a", 2*time.Second, game.Early)
	r.Add(hit, late, live)

	missed := r.Sweep()
	if len(missed) != 1 || missed[0] != late {
		t.Errorf("expected the late cue to be retired, got %v", missed)
	}
	if late.Judgement != game.Miss || !late.Resolved {
		t.Errorf("late cue not resolved as a miss: %+v", late)
	}
	if r.Len() != 1 || r.Cues()[0] != live {
		t.Errorf("expected only the live cue to remain, got %v", r.Cues())
	}
}

func TestRegistryAdvanceSkipsResolved(t *testing.T) {
	var r Registry
	done := cueAt("w", time.Second, game.InPerfect)
	done.Resolve(game.Perfect)
	r.Add(done)
	r.Advance(2 * time.Second)
	if done.State != game.InPerfect {
		t.Errorf("resolved cue advanced to %v", done.State)
	}
}

var resolutionResult []Resolution

func BenchmarkEvaluate(b *testing.B) {
	var tally score.Tally
	j := New(PairAll, &tally, nil)
	lanes := []string{"w", "q", "f", "d", "s", "a", "v"}
	cues := make([]*game.Cue, 0, 64)
	for i := 0; i < 64; i++ {
		cues = append(cues, cueAt(lanes[i%len(lanes)], time.Duration(i)*ms, game.InOK))
	}
	samples := []input.Sample{press("z", 0), press("y", 0)}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		resolutionResult = j.Evaluate(cues, samples)
	}
}
