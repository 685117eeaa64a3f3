package game

import (
	"time"
)

// Note is a scheduled event on the chart. It is immutable once the chart
// has been built.
type Note struct {
	Time    time.Duration // The time the note should be hit
	Lane    string        // The lane id, a key code or named input
	CueTime time.Duration // When the note becomes a live cue
}

// CueAt returns the moment a note hit at t should be spawned, given a lead
// of offsetBeats beats of beatLength each.
func CueAt(t time.Duration, offsetBeats float64, beatLength time.Duration) time.Duration {
	return t - time.Duration(offsetBeats*float64(beatLength))
}
