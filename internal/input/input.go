package input

import (
	"time"
)

// Sample is one press detected during a tick.
type Sample struct {
	Lane string
	Time time.Duration
}

// Source yields the presses that arrived since the previous poll, each
// stamped with the tick time now.
type Source interface {
	Poll(now time.Duration) []Sample
}

// Buffer collects the samples of a single tick. It is emptied every tick
// whether or not a sample judged anything.
type Buffer struct {
	samples []Sample
}

func (b *Buffer) Add(samples ...Sample) {
	b.samples = append(b.samples, samples...)
}

// Samples in arrival order.
func (b *Buffer) Samples() []Sample {
	return b.samples
}

func (b *Buffer) Len() int {
	return len(b.samples)
}

func (b *Buffer) Clear() {
	b.samples = b.samples[:0]
}
