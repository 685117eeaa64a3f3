package audio

import (
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestStreamFollowsPosition(t *testing.T) {
	format := beep.Format{SampleRate: 1000, NumChannels: 2, Precision: 2}
	buffer := beep.NewBuffer(format)
	buffer.Append(beep.Silence(5000))
	streamer := buffer.Streamer(0, buffer.Len())

	clk := NewStream(streamer, format, 1, 120, 0, false)
	if clk.Now() != 0 {
		t.Errorf("expected 0, got %v", clk.Now())
	}
	if err := streamer.Seek(1500); err != nil {
		t.Fatal(err)
	}
	if clk.Now() != 1500*time.Millisecond {
		t.Errorf("expected 1.5s, got %v", clk.Now())
	}
	if err := streamer.Seek(200); err != nil {
		t.Fatal(err)
	}
	if clk.Now() != 1500*time.Millisecond {
		t.Errorf("clock went backwards to %v", clk.Now())
	}
	if clk.BeatLength() != 500*time.Millisecond {
		t.Errorf("expected 500ms beats, got %v", clk.BeatLength())
	}
}
