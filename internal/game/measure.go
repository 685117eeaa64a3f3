package game

import (
	"math"
	"time"
)

const (
	BeatsPerMeasure = 4
	TicksPerBeat    = 96
)

// MBT is a Measure-Beat-Tick position. Measure and Beat are 1-based, Tick is
// 1-based within a beat of TicksPerBeat ticks. Measures are assumed to be 4/4.
type MBT struct {
	Measure int
	Beat    int
	Tick    int
}

// FromBeats converts an absolute beat position, counted from zero, to MBT.
func FromBeats(beats float64) MBT {
	measure := int(math.Floor(beats / BeatsPerMeasure))
	beat := int(math.Floor(beats - float64(measure*BeatsPerMeasure)))
	tick := int(math.Floor((beats - float64(measure*BeatsPerMeasure) - float64(beat)) * TicksPerBeat))
	return MBT{Measure: measure + 1, Beat: beat + 1, Tick: tick + 1}
}

// Beats is the absolute beat position of m, counted from zero.
func (m MBT) Beats() float64 {
	return float64((m.Measure-1)*BeatsPerMeasure+(m.Beat-1)) + float64(m.Tick-1)/TicksPerBeat
}

// Duration is the track time of m for a beat of the given length.
func (m MBT) Duration(beatLength time.Duration) time.Duration {
	return time.Duration(math.Round(m.Beats() * float64(beatLength)))
}
