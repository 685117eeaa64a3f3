// Package audio keeps track time locked to a playing audio stream.
package audio

import (
	"time"

	"git.lost.host/meutraa/cadence/internal/clock"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Stream derives track time from the position of an audio stream, so that
// judgement stays locked to what the player hears rather than to frame time.
type Stream struct {
	streamer beep.StreamSeeker
	format   beep.Format
	rate     float64
	beat     time.Duration
	offset   time.Duration
	last     time.Duration
	locked   bool
}

// NewStream reads the position of s, which was decoded with format f and is
// played back at the given rate. When the stream is playing on the speaker,
// locked must be true so position reads are serialised with playback.
func NewStream(s beep.StreamSeeker, f beep.Format, rate, bpm float64, offset time.Duration, locked bool) *Stream {
	if rate <= 0 {
		rate = 1
	}
	return &Stream{
		streamer: s,
		format:   f,
		rate:     rate,
		beat:     clock.BeatLength(bpm),
		offset:   offset,
		locked:   locked,
	}
}

func (s *Stream) Now() time.Duration {
	if s.locked {
		speaker.Lock()
	}
	pos := s.streamer.Position()
	if s.locked {
		speaker.Unlock()
	}
	// Positions are in source samples, so the playback rate does not change
	// track time, only how quickly it passes.
	t := s.format.SampleRate.D(pos) + s.offset
	if t < s.last {
		return s.last
	}
	s.last = t
	return t
}

func (s *Stream) BeatLength() time.Duration { return s.beat }

// Rate is the playback speed multiplier the stream was opened with.
func (s *Stream) Rate() float64 { return s.rate }

var _ clock.Clock = (*Stream)(nil)
