package score

import (
	"time"

	"git.lost.host/meutraa/cadence/internal/game"
	"github.com/google/uuid"
)

type Scorer interface {
	Init(path string) error
	Deinit()

	// Save the outcome of this play
	Save(chart *game.Chart, tally *Tally) (Result, error)

	// Load previous results for the chart, newest first
	Load(chart *game.Chart) ([]Result, error)
}

// Result is a finished play of a chart.
type Result struct {
	ID       uuid.UUID
	Sum      string // chart fingerprint
	Points   int
	Counts   [game.NumJudgements]int
	PlayedAt time.Time
}

func (r Result) Count(j game.Judgement) int {
	return r.Counts[j]
}
