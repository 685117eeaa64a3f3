package judge

import (
	"time"

	"git.lost.host/meutraa/cadence/internal/game"
)

// Registry owns the live cues, in spawn order. Cues leave it only through
// Sweep.
type Registry struct {
	cues []*game.Cue
}

func (r *Registry) Add(cues ...*game.Cue) {
	r.cues = append(r.cues, cues...)
}

// Cues in spawn order. The slice is only valid until the next Sweep.
func (r *Registry) Cues() []*game.Cue {
	return r.cues
}

func (r *Registry) Len() int {
	return len(r.cues)
}

// Advance steps every unresolved cue's state machine once.
func (r *Registry) Advance(now time.Duration) {
	for _, c := range r.cues {
		if !c.Resolved {
			c.Advance(now)
		}
	}
}

// Sweep disposes of resolved cues, retiring any Late cue as a miss first,
// and returns the cues that were retired as misses.
func (r *Registry) Sweep() []*game.Cue {
	var missed []*game.Cue
	kept := r.cues[:0]
	for _, c := range r.cues {
		if !c.Resolved && c.State == game.Late {
			c.Resolve(game.Miss)
			missed = append(missed, c)
		}
		if !c.Resolved {
			kept = append(kept, c)
		}
	}
	// drop references held past the new length
	for i := len(kept); i < len(r.cues); i++ {
		r.cues[i] = nil
	}
	r.cues = kept
	return missed
}
