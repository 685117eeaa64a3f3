// Package scheduler turns the notes of a chart into live cues as the track
// time reaches each note's cue time.
package scheduler

import (
	"time"

	"git.lost.host/meutraa/cadence/internal/game"
	"github.com/charmbracelet/log"
)

// Widths are the full widths of the accuracy windows given to each cue.
type Widths struct {
	OK, Good, Perfect time.Duration
}

type Scheduler struct {
	chart  *game.Chart
	lanes  game.Lanes
	widths Widths
	logger *log.Logger

	next int // index of the next note to spawn
}

func New(chart *game.Chart, lanes game.Lanes, widths Widths, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{chart: chart, lanes: lanes, widths: widths, logger: logger}
}

// Spawn returns a cue for every not yet spawned note whose cue time is at
// or before now, in chart order. Each note is spawned exactly once.
func (s *Scheduler) Spawn(now time.Duration) []*game.Cue {
	var cues []*game.Cue
	for ; s.next < len(s.chart.Notes); s.next++ {
		note := s.chart.Notes[s.next]
		if now < note.CueTime {
			break
		}
		cues = append(cues, s.spawn(note))
	}
	return cues
}

func (s *Scheduler) spawn(note *game.Note) *game.Cue {
	lane, ok := s.lanes.Lookup(note.Lane)
	if !ok {
		lane = game.Lane{ID: note.Lane, Index: -1}
	}
	cue := game.NewCue(note, lane, game.NewWindow(note.Time, s.widths.OK, s.widths.Good, s.widths.Perfect))
	if !ok {
		cue.Unmatchable = true
		s.logger.Warn("chart lane does not match any input lane", "lane", note.Lane, "time", note.Time)
	} else {
		s.logger.Debug("spawn", "lane", note.Lane, "time", note.Time)
	}
	return cue
}

// Done reports whether every note has been spawned.
func (s *Scheduler) Done() bool {
	return s.next >= len(s.chart.Notes)
}

// Remaining is the number of notes still to spawn.
func (s *Scheduler) Remaining() int {
	return len(s.chart.Notes) - s.next
}

// Reset rewinds to the start of the chart.
func (s *Scheduler) Reset() {
	s.next = 0
}
