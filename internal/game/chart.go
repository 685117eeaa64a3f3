package game

import (
	"sort"
	"time"
)

// Chart is the ordered timeline of notes for one level.
type Chart struct {
	Title string
	Notes []*Note
	BPM   float64
}

// NewChart computes the cue time of every note and orders the chart by it.
// Notes sharing a cue time keep their relative order.
func NewChart(title string, notes []*Note, offsetBeats float64, beatLength time.Duration) *Chart {
	for _, n := range notes {
		n.CueTime = CueAt(n.Time, offsetBeats, beatLength)
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CueTime < notes[j].CueTime
	})
	bpm := 0.0
	if beatLength > 0 {
		bpm = float64(time.Minute) / float64(beatLength)
	}
	return &Chart{Title: title, Notes: notes, BPM: bpm}
}

// End is the time of the last note, or zero for an empty chart.
func (c *Chart) End() time.Duration {
	var end time.Duration
	for _, n := range c.Notes {
		if n.Time > end {
			end = n.Time
		}
	}
	return end
}
