package score

import (
	"git.lost.host/meutraa/cadence/internal/game"
)

// Tally accumulates the points and judgement counts of one play.
type Tally struct {
	Points int
	Counts [game.NumJudgements]int
}

func (t *Tally) Add(j game.Judgement) {
	t.Points += j.Points()
	t.Counts[j]++
}

func (t *Tally) Count(j game.Judgement) int {
	return t.Counts[j]
}

// Judged is the number of cues resolved, misses included.
func (t *Tally) Judged() int {
	n := 0
	for _, c := range t.Counts {
		n += c
	}
	return n
}
