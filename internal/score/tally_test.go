package score

import (
	"testing"

	"git.lost.host/meutraa/cadence/internal/game"
)

func TestTally(t *testing.T) {
	var tally Tally
	for _, j := range []game.Judgement{game.Perfect, game.Good, game.OK, game.Miss, game.Perfect} {
		tally.Add(j)
	}
	if tally.Points != 9 {
		t.Errorf("expected 9 points, got %d", tally.Points)
	}
	if tally.Count(game.Perfect) != 2 || tally.Count(game.Miss) != 1 {
		t.Errorf("unexpected counts %v", tally.Counts)
	}
	if tally.Judged() != 5 {
		t.Errorf("expected 5 judged, got %d", tally.Judged())
	}
}
