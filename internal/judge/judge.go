// Package judge matches the presses of a tick against live cues and turns
// matches into judgements.
package judge

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/cadence/internal/game"
	"git.lost.host/meutraa/cadence/internal/input"
	"git.lost.host/meutraa/cadence/internal/score"
	"github.com/charmbracelet/log"
)

// Pairing decides which cues a press may judge.
type Pairing int

const (
	// PairAll judges every eligible cue in a lane that was pressed this tick.
	PairAll Pairing = iota
	// PairFirst lets each press judge the earliest spawned eligible cue in
	// its lane.
	PairFirst
	// PairClosest lets each press judge the eligible cue in its lane whose
	// note time is nearest the press.
	PairClosest
)

var pairingNames = [...]string{"all", "first", "closest"}

// Pairings lists the accepted strategy names.
func Pairings() []string {
	return pairingNames[:]
}

func ParsePairing(s string) (Pairing, error) {
	for i, name := range pairingNames {
		if name == s {
			return Pairing(i), nil
		}
	}
	return PairAll, fmt.Errorf("unknown pairing strategy %q", s)
}

func (p Pairing) String() string {
	if p < 0 || int(p) >= len(pairingNames) {
		return "unknown"
	}
	return pairingNames[p]
}

// Resolution is a cue leaving play together with its outcome.
type Resolution struct {
	Cue       *game.Cue
	Judgement game.Judgement
}

type Judge struct {
	pairing Pairing
	tally   *score.Tally
	logger  *log.Logger
}

func New(pairing Pairing, tally *score.Tally, logger *log.Logger) *Judge {
	if logger == nil {
		logger = log.Default()
	}
	return &Judge{pairing: pairing, tally: tally, logger: logger}
}

// Evaluate judges live cues against the samples of one tick. Each cue is
// judged at most once. Samples that match nothing are ignored.
func (j *Judge) Evaluate(cues []*game.Cue, samples []input.Sample) []Resolution {
	if len(samples) == 0 {
		return nil
	}
	var resolved []Resolution
	judged := make(map[*game.Cue]bool)
	judge := func(c *game.Cue) {
		if judged[c] {
			return
		}
		judged[c] = true
		if r, ok := j.score(c); ok {
			resolved = append(resolved, r)
		}
	}

	switch j.pairing {
	case PairAll:
		pressed := make(map[string]bool, len(samples))
		for _, s := range samples {
			pressed[s.Lane] = true
		}
		for _, c := range cues {
			if c.Judgeable() && pressed[c.Note.Lane] {
				judge(c)
			}
		}
	case PairFirst, PairClosest:
		for _, s := range samples {
			if c := j.pick(cues, s, judged); c != nil {
				judge(c)
			}
		}
	}
	return resolved
}

func (j *Judge) pick(cues []*game.Cue, s input.Sample, judged map[*game.Cue]bool) *game.Cue {
	var best *game.Cue
	var bestDistance time.Duration
	for _, c := range cues {
		if judged[c] || !c.Judgeable() || c.Note.Lane != s.Lane {
			continue
		}
		if j.pairing == PairFirst {
			return c
		}
		d := c.Note.Time - s.Time
		if d < 0 {
			d = -d
		}
		if best == nil || d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}

// score applies the judgement of the cue's current state. Late cues never
// get here, the registry retires them as misses.
func (j *Judge) score(c *game.Cue) (Resolution, bool) {
	jm := c.State.Judgement()
	if jm == game.Miss {
		return Resolution{}, false
	}
	c.Resolve(jm)
	j.tally.Add(jm)
	j.logger.Info(jm.String()+"!", "lane", c.Note.Lane, "time", c.Note.Time, "points", j.tally.Points)
	return Resolution{Cue: c, Judgement: jm}, true
}
