// Package clock provides track time sources. A clock reports how far into
// the track playback is and how long one beat lasts.
package clock

import (
	"time"
)

type Clock interface {
	// Now is the current track time. It never decreases during a level.
	Now() time.Duration
	// BeatLength is the duration of one beat at the track tempo.
	BeatLength() time.Duration
}

// BeatLength converts a tempo in beats per minute to the length of one beat.
func BeatLength(bpm float64) time.Duration {
	if bpm <= 0 {
		return 0
	}
	return time.Duration(float64(time.Minute) / bpm)
}

// Manual is a clock that only moves when told to.
type Manual struct {
	now  time.Duration
	beat time.Duration
}

func NewManual(bpm float64) *Manual {
	return &Manual{beat: BeatLength(bpm)}
}

func (m *Manual) Now() time.Duration        { return m.now }
func (m *Manual) BeatLength() time.Duration { return m.beat }

// Set moves the clock to t. Moving backwards is ignored.
func (m *Manual) Set(t time.Duration) {
	if t > m.now {
		m.now = t
	}
}

func (m *Manual) Advance(d time.Duration) {
	m.Set(m.now + d)
}

// Wall follows the system clock from a start instant, which may lie in the
// future to give the player a lead in.
type Wall struct {
	start  time.Time
	beat   time.Duration
	offset time.Duration
	last   time.Duration
	since  func(time.Time) time.Duration
}

func NewWall(start time.Time, bpm float64, offset time.Duration) *Wall {
	return &Wall{start: start, beat: BeatLength(bpm), offset: offset, since: time.Since}
}

func (w *Wall) Now() time.Duration {
	t := w.since(w.start) + w.offset
	if t < w.last {
		return w.last
	}
	w.last = t
	return t
}

func (w *Wall) BeatLength() time.Duration { return w.beat }
